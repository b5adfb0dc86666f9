package tan

import "testing"

func TestEndpointPath(t *testing.T) {
	tests := []struct {
		name     string
		ep       endpoint
		params   []string
		expected string
	}{
		{
			name:     "nearby stops",
			ep:       epNearbyStops,
			params:   []string{"47.264", "-1.585"},
			expected: "/arrets.json/47.264/-1.585",
		},
		{
			name:     "all stops",
			ep:       epAllStops,
			expected: "/arrets.json",
		},
		{
			name:     "schedule",
			ep:       epSchedule,
			params:   []string{"HBLI2", "C5", "1"},
			expected: "/horairesarret.json/HBLI2/C5/1",
		},
		{
			name:     "schedule on date",
			ep:       epScheduleOnDate,
			params:   []string{"HBLI2", "C5", "1", "2025-03-23"},
			expected: "/horairesarret.json/HBLI2/C5/1/2025-03-23",
		},
		{
			name:     "wait times",
			ep:       epWaitTimes,
			params:   []string{"HBLI2"},
			expected: "/tempsattente.json/HBLI2",
		},
		{
			name:     "wait times limited",
			ep:       epWaitTimesLimited,
			params:   []string{"HBLI2", "2"},
			expected: "/tempsattentelieu.json/HBLI2/2",
		},
		{
			name:     "wait times for line",
			ep:       epWaitTimesLine,
			params:   []string{"HBLI2", "2", "C5"},
			expected: "/tempsattentelieu.json/HBLI2/2/C5",
		},
		{
			name:     "slash in identifier stays one segment",
			ep:       epWaitTimes,
			params:   []string{"AB/CD"},
			expected: "/tempsattente.json/AB%2FCD",
		},
		{
			name:     "reserved characters are percent-encoded",
			ep:       epSchedule,
			params:   []string{"A B", "C?5", "1"},
			expected: "/horairesarret.json/A%20B/C%3F5/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ep.path(tt.params...)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
