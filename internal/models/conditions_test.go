package models

import "testing"

func TestSurfConditions_IsGoodForSurfing(t *testing.T) {
	tests := []struct {
		name       string
		conditions SurfConditions
		want       bool
	}{
		{
			name: "clean mid-size swell",
			conditions: SurfConditions{
				WaveHeight:  8.5,
				WindSpeed:   12.0,
				SwellPeriod: 12,
			},
			want: true,
		},
		{
			name: "blown out by wind",
			conditions: SurfConditions{
				WaveHeight:  8.5,
				WindSpeed:   20.0,
				SwellPeriod: 12,
			},
			want: false,
		},
		{
			name: "too small",
			conditions: SurfConditions{
				WaveHeight:  1.5,
				WindSpeed:   5.0,
				SwellPeriod: 10,
			},
			want: false,
		},
		{
			name: "too big",
			conditions: SurfConditions{
				WaveHeight:  15.0,
				WindSpeed:   5.0,
				SwellPeriod: 18,
			},
			want: false,
		},
		{
			name: "short period wind swell",
			conditions: SurfConditions{
				WaveHeight:  5.0,
				WindSpeed:   8.0,
				SwellPeriod: 6,
			},
			want: false,
		},
		{
			name: "boundary values all inclusive",
			conditions: SurfConditions{
				WaveHeight:  2.0,
				WindSpeed:   15.0,
				SwellPeriod: 8,
			},
			want: true,
		},
		{
			name: "upper wave height boundary",
			conditions: SurfConditions{
				WaveHeight:  12.0,
				WindSpeed:   15.0,
				SwellPeriod: 8,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.conditions.IsGoodForSurfing()
			if got != tt.want {
				t.Errorf("IsGoodForSurfing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTidePhases(t *testing.T) {
	phases := TidePhases()
	want := []TidePhase{TideLow, TideRising, TideHigh, TideFalling}

	if len(phases) != len(want) {
		t.Fatalf("TidePhases() returned %d phases, want %d", len(phases), len(want))
	}
	for i, p := range phases {
		if p != want[i] {
			t.Errorf("TidePhases()[%d] = %v, want %v", i, p, want[i])
		}
	}
}
