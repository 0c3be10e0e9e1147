// internal/defs/info.go
package defs

import (
	"fmt"
	"strings"
)

// Stars renders a 1-5 rating as ASCII, e.g. "***--".
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("*", n) + strings.Repeat("-", 5-n)
}

// CardLines is the text of a shop card for s.
func (s TowerSpec) CardLines() []string {
	return []string{
		s.Name,
		"Type: " + s.TypeLabel(),
		fmt.Sprintf("Rate   %s  %.1f", Stars(RateAttackRate(s.AttackRate)), s.AttackRate),
		fmt.Sprintf("Damage %s  %.0f", Stars(RateDamage(s.Damage)), s.Damage),
		fmt.Sprintf("Range  %s  %.0f", Stars(RateRange(s.Range)), s.Range),
	}
}

// InfoTitles - заголовки страниц экрана справки.
var InfoTitles = []string{"How to Play", "Spellbook", "Demonology", "Passives"}

var howToPlay = []string{
	"Buy a spelltower from the shop, then click a free cell to place it.",
	"Towers cannot stand on the demon path or on another tower.",
	"Space starts the next wave; during a wave it pauses and resumes.",
	"N calls the next wave early while paused.",
	"Right-click a tower (or click it with nothing to place) to upgrade it.",
	"Each demon that reaches the exit costs one health. At zero the game ends.",
	"After every wave pick one of two passives. Passives stack.",
	"F cycles game speed, C copies the status line, R resets the game.",
}

// InfoPage returns the title and body lines of help page n. Pages past the
// last wrap around.
func (c *Catalog) InfoPage(n int) (title string, lines []string) {
	count := len(InfoTitles)
	n = ((n % count) + count) % count
	title = InfoTitles[n]
	switch n {
	case 0:
		lines = append(lines, howToPlay...)
	case 1:
		for _, e := range Spellbook {
			lines = append(lines, fmt.Sprintf("%-10s %s", e.Name, e.Description))
		}
	case 2:
		for _, d := range c.Demons {
			lines = append(lines, fmt.Sprintf("%-16s %s  HP x%.1f  SPD x%.1f  %s / weak to %s",
				d.Name, d.Description, d.HealthMult, d.SpeedMult, d.Element, d.Weakness))
		}
	case 3:
		for _, p := range c.Passives {
			lines = append(lines, fmt.Sprintf("%-18s %s", p.Name, p.Short))
		}
	}
	return title, lines
}
