package core

// messages maps the message keys used throughout mgtoolkit to their
// human-readable text. The key set descends from the original toolkit's
// resources table, extended with a few keys (value_invalid, range_invalid,
// partition_invalid) that the original used in code without ever tabulating.
var messages = map[string]string{
	"value_null":            "value must not be nil",
	"file_empty":            "file is empty",
	"folder_empty":          "folder is empty",
	"format_invalid":        "format is invalid",
	"not_in_generating_set": "value is not a member of the generating set",
	"value_not_found":       "value was not found",
	"no_overlap":            "sets do not overlap",
	"not_identical":         "values are not identical",
	"not_a_subset":          "value is not a subset of the expected set",
	"arguments_invalid":     "arguments are invalid",
	"structures_incompatible": "structures are incompatible",
	"value_out_of_bounds":   "value is out of bounds",
	"value_invalid":         "value is invalid",
	"range_invalid":         "range is invalid",
	"partition_invalid":     "partition is invalid",
}
