package catalog

// Major describes one registered program of study.
type Major struct {
	Code string
	Name string
}

// Majors is every major the dispatcher knows how to route.
var Majors = []Major{
	{Code: "ACC", Name: "Accounting"},
	{Code: "FIN", Name: "Finance"},
	{Code: "MKT", Name: "Marketing"},
	{Code: "MGT", Name: "Management"},
	{Code: "MIS", Name: "Management Information Systems"},
	{Code: "ECON", Name: "Economics"},
	{Code: "HRM", Name: "Human Resource Management"},
	{Code: "IB", Name: "International Business"},
	{Code: "CS", Name: "Computer Science"},
	{Code: "CE", Name: "Computer Engineering"},
	{Code: "EE", Name: "Electrical Engineering"},
	{Code: "ME", Name: "Mechanical Engineering"},
	{Code: "CIVE", Name: "Civil Engineering"},
	{Code: "ENGM", Name: "Engineering Management"},
	{Code: "IEM", Name: "Industrial Engineering and Management"},
	{Code: "TEM", Name: "Technology and Engineering Management"},
}

// engineeringManagementFamily majors receive seven final-score
// recommendations instead of five.
var engineeringManagementFamily = map[string]bool{
	"ENGM": true,
	"IEM":  true,
	"TEM":  true,
}

const (
	defaultRecommendationCap  = 5
	extendedRecommendationCap = 7
)

// RecommendationCap returns how many final-score recommendations a major
// receives.
func RecommendationCap(major string) int {
	if engineeringManagementFamily[major] {
		return extendedRecommendationCap
	}
	return defaultRecommendationCap
}

// IsKnownMajor reports whether code is a registered major.
func IsKnownMajor(code string) bool {
	for _, m := range Majors {
		if m.Code == code {
			return true
		}
	}
	return false
}
