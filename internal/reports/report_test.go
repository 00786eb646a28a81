package reports

import "testing"

func TestConfidenceBuckets(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       ConfidenceDistribution
	}{
		{"high above threshold", 0.95, ConfidenceDistribution{High: 1}},
		{"boundary point eight is medium", 0.80, ConfidenceDistribution{Medium: 1}},
		{"mid range", 0.70, ConfidenceDistribution{Medium: 1}},
		{"boundary point six is medium", 0.60, ConfidenceDistribution{Medium: 1}},
		{"low below threshold", 0.40, ConfidenceDistribution{Low: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ConfidenceDistribution
			d.bucket(tt.confidence)
			if d != tt.want {
				t.Errorf("bucket(%v) = %+v, want %+v", tt.confidence, d, tt.want)
			}
		})
	}
}

func TestConfidenceBucketsAccumulate(t *testing.T) {
	var d ConfidenceDistribution
	for _, c := range []float64{0.95, 0.9, 0.75, 0.4} {
		d.bucket(c)
	}

	want := ConfidenceDistribution{High: 2, Medium: 1, Low: 1}
	if d != want {
		t.Errorf("distribution: got %+v, want %+v", d, want)
	}
}
