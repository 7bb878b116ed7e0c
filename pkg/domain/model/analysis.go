package model

// AnalysisResult is the rendered repository tree plus the decoded text of
// every extracted file, keyed by clean name.
type AnalysisResult struct {
	Structure string            `json:"structure"`
	Contents  map[string]string `json:"contents"`
}

// AnalysisSummary holds aggregate numbers of an AnalysisResult
type AnalysisSummary struct {
	Files  int `json:"files"`
	Bytes  int `json:"bytes"`
	Tokens int `json:"tokens"`
}
