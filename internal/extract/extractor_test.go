package extract

import (
	"reflect"
	"testing"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name             string
		text             string
		wantInstitutions []string
		wantMetrics      []string
		wantDirectional  Directional
	}{
		{
			name:             "institution with bullish tone",
			text:             "Goldman Sachs beats Q3 earnings",
			wantInstitutions: []string{"Goldman Sachs"},
			wantMetrics:      []string{},
			wantDirectional:  DirectionalBullish,
		},
		{
			name:             "bank warning with metric acronyms",
			text:             "Deutsche Bank warns of rising NPL ratios and potential writedown",
			wantInstitutions: []string{"Deutsche Bank"},
			wantMetrics:      []string{"non_performing_loans", "write_down"},
			wantDirectional:  DirectionalBearish,
		},
		{
			name:             "empty input",
			text:             "",
			wantInstitutions: []string{},
			wantMetrics:      []string{},
			wantDirectional:  DirectionalNeutral,
		},
		{
			name:             "no signal words",
			text:             "Quarterly results published on schedule",
			wantInstitutions: []string{},
			wantMetrics:      []string{},
			wantDirectional:  DirectionalNeutral,
		},
		{
			name:             "multiple institutions in first-seen order",
			text:             "UBS and Credit Suisse face review, UBS shares halted",
			wantInstitutions: []string{"UBS", "Credit Suisse"},
			wantMetrics:      []string{},
			wantDirectional:  DirectionalNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.text)

			if !reflect.DeepEqual(result.Institutions, tt.wantInstitutions) {
				t.Errorf("Institutions = %v, want %v", result.Institutions, tt.wantInstitutions)
			}
			if !reflect.DeepEqual(result.Metrics, tt.wantMetrics) {
				t.Errorf("Metrics = %v, want %v", result.Metrics, tt.wantMetrics)
			}
			if result.Directional != tt.wantDirectional {
				t.Errorf("Directional = %v, want %v", result.Directional, tt.wantDirectional)
			}
			if result.Text != tt.text {
				t.Errorf("Text = %q, want %q", result.Text, tt.text)
			}
		})
	}
}

func TestExtractor_InstitutionMatchingIsCaseInsensitive(t *testing.T) {
	extractor := NewExtractor()

	result := extractor.Extract("GOLDMAN SACHS and goldman sachs mentioned twice")
	if !reflect.DeepEqual(result.Institutions, []string{"Goldman Sachs"}) {
		t.Errorf("Institutions = %v, want canonical de-duplicated entry", result.Institutions)
	}
}

func TestExtractor_InstitutionWordBoundary(t *testing.T) {
	extractor := NewExtractor()

	// "ING" must not fire inside a longer word
	result := extractor.Extract("Banks are leveraging new capital rules")
	if len(result.Institutions) != 0 {
		t.Errorf("Institutions = %v, want none for substring-only mention", result.Institutions)
	}

	result = extractor.Extract("ING reports steady quarter")
	if !reflect.DeepEqual(result.Institutions, []string{"ING"}) {
		t.Errorf("Institutions = %v, want [ING]", result.Institutions)
	}
}

func TestExtractor_MetricsAreSortedAndDeduplicated(t *testing.T) {
	extractor := NewExtractor()

	result := extractor.Extract("Revenue up, EPS beats, revenue guidance strong, EBITDA steady")
	want := []string{"earnings_per_share", "ebitda", "revenue"}
	if !reflect.DeepEqual(result.Metrics, want) {
		t.Errorf("Metrics = %v, want %v", result.Metrics, want)
	}
}

func TestExtractor_Numerics(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "currency and percent mentions",
			text: "Profit of $1.2bn on revenue up 15%",
			want: []string{"$1.2bn", "15%"},
		},
		{
			name: "negative percentage",
			text: "Margin fell -3.2% in Q2",
			want: []string{"-3.2%", "2"},
		},
		{
			name: "zero values discarded",
			text: "Growth of 0% reported",
			want: []string{},
		},
		{
			name: "capped at five mentions",
			text: "1% 2% 3% 4% 5% 6% 7%",
			want: []string{"1%", "2%", "3%", "4%", "5%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.text)
			if !reflect.DeepEqual(result.Numerics, tt.want) {
				t.Errorf("Numerics = %v, want %v", result.Numerics, tt.want)
			}
		})
	}
}

func TestExtractor_Totality(t *testing.T) {
	extractor := NewExtractor()

	inputs := []string{
		"",
		"   ",
		"!!!@@@###",
		"áéíóú non-ascii text 测试",
		"a very long headline " + string(make([]byte, 500)),
	}

	for _, text := range inputs {
		result := extractor.Extract(text)
		if result.Institutions == nil || result.Metrics == nil || result.Numerics == nil {
			t.Errorf("Extract(%q) returned nil slices", text)
		}
		if result.Directional == "" {
			t.Errorf("Extract(%q) returned empty directional", text)
		}
	}
}

func TestExtractor_ExtractBatch(t *testing.T) {
	extractor := NewExtractor()

	texts := []string{"Goldman Sachs beats estimates", "", "ECB holds rates"}
	results := extractor.ExtractBatch(texts)

	if len(results) != len(texts) {
		t.Fatalf("ExtractBatch returned %d results, want %d", len(results), len(texts))
	}
	for i, result := range results {
		if result.Text != texts[i] {
			t.Errorf("result %d text = %q, want %q", i, result.Text, texts[i])
		}
	}
}
