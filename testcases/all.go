package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"progress":   progressCases,
	"geometry":   geometryCases,
	"cap":        capCases,
	"ring":       ringCases,
	"icon":       iconCases,
	"degenerate": degenerateCases,
}
