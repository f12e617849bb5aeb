package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"line":      lineCases,
	"thick":     thickCases,
	"polygon":   polygonCases,
	"fill":      fillCases,
	"blend":     blendCases,
	"circle":    circleCases,
	"clip":      clipCases,
	"ctm":       ctmCases,
	"large":     largeCases,
	"precision": precisionCases,
}

// Lookup finds a test case by its full name, "category_name".
func Lookup(fullName string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == fullName {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}
