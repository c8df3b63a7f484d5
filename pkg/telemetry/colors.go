package telemetry

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// team colors of the 2024 grid; matched case-insensitively by substring
// so "Red Bull Racing Honda RBPT" still resolves.
var teamColors = []struct {
	name  string
	color string
}{
	{"red bull racing", "#1E5F63"},
	{"ferrari", "#DC0000"},
	{"mercedes", "#00D2BE"},
	{"mclaren", "#FF8700"},
	{"aston martin", "#006F62"},
	{"alpine", "#0090FF"},
	{"williams", "#005AFF"},
	{"alphatauri", "#2B4562"},
	{"rb", "#2B4562"},
	{"alfa romeo", "#900000"},
	{"haas", "#FFFFFF"},
	{"sauber", "#00E701"},
	{"kick sauber", "#00E701"},
}

// TraceColor resolves a display color for a driver's trace: team color
// when the team is known, otherwise a color derived from the driver
// code. The fallback uses FNV-1a over the UTF-8 bytes so the same
// driver always maps to the same color, across runs included.
func TraceColor(team, driver string) string {
	lower := strings.ToLower(team)
	for _, tc := range teamColors {
		if strings.Contains(lower, tc.name) {
			return tc.color
		}
	}
	h := fnv.New32a()
	h.Write([]byte(driver))
	return fmt.Sprintf("#%06x", h.Sum32()%0xFFFFFF)
}
