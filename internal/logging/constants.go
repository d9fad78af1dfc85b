package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the extraction pipeline,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldImage      = "image_path"
	FieldStrategy   = "strategy"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldField      = "field"
	FieldPattern    = "pattern"
	FieldLine       = "line"
	FieldCount      = "count"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
