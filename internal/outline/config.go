package outline

// Config holds the tunable thresholds for title and heading detection.
type Config struct {
	DefaultBodySize    float64 // body size when no line carries a usable size
	TitleSizeTolerance float64 // max distance from the page-1 maximum size to join the title
	MaxTitleWords      int     // titles at or above this word count are rejected
	SignificanceRatio  float64 // size must exceed body*ratio to count as visually large
	H1Ratio            float64 // relative size above which a styled heading is H1
	H2Ratio            float64 // relative size above which a styled heading is H2
	MaxHeadingWords    int     // styled headings at or above this word count are rejected
	ContentTop         float64 // top edge must exceed this to count as page content
	ContentBottom      float64 // bottom edge must stay under this to count as page content
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		DefaultBodySize:    12.0,
		TitleSizeTolerance: 0.1,
		MaxTitleWords:      20,
		SignificanceRatio:  1.15,
		H1Ratio:            1.6,
		H2Ratio:            1.3,
		MaxHeadingWords:    12,
		ContentTop:         50,
		ContentBottom:      750,
	}
}
