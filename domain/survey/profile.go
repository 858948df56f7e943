package survey

// Profile summarizes the response distribution of one question column.
// Produced by the profiler adapter and written to the summary workbook and
// the report.
type Profile struct {
	Question    string  `json:"question"`
	ValidN      int     `json:"valid_n"`
	Missing     int     `json:"missing"`
	MissingRate float64 `json:"missing_rate"`
	Cardinality int     `json:"cardinality"`
	TopCategory string  `json:"top_category"`
	TopShare    float64 `json:"top_share"`
	Entropy     float64 `json:"entropy"`
	Gini        float64 `json:"gini"`
	CountMean   float64 `json:"count_mean"`
	CountStdDev float64 `json:"count_std_dev"`
}
