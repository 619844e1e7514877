package logging

// Standardized field names for structured logging.
// Keeping these in one place makes the import logs easy to filter
// by account, batch or token.
const (
	FieldAccount    = "account_id"
	FieldFile       = "file_path"
	FieldFormat     = "format"
	FieldRow        = "row"
	FieldToken      = "import_token"
	FieldCategory   = "category"
	FieldStrategy   = "strategy"
	FieldKeyword    = "keyword"
	FieldCount      = "count"
	FieldImported   = "imported"
	FieldDuplicates = "duplicates"
	FieldErrors     = "errors"
	FieldOperation  = "operation"
)
