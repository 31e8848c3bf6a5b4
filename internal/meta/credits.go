package meta

import (
	"github.com/aiometa/aiometa/internal/meta/tmdb"
	"github.com/aiometa/aiometa/internal/meta/tvdb"
)

// Credits is the reconciled cast/crew shape shared by both builders. The two
// constructors normalize the provider-specific payloads so the field
// utilities never have to know which provider a credit came from.
type Credits struct {
	Cast []CreditEntry
	Crew []CrewCredit
}

// CreditEntry is one normalized cast credit.
type CreditEntry struct {
	Name        string
	Character   string
	ProfilePath string
}

// CrewCredit is one normalized crew credit.
type CrewCredit struct {
	Name       string
	Job        string
	Department string
}

// CreditsFromMovie normalizes the TMDB appended-credits payload.
func CreditsFromMovie(c tmdb.Credits) Credits {
	credits := Credits{
		Cast: make([]CreditEntry, len(c.Cast)),
		Crew: make([]CrewCredit, len(c.Crew)),
	}
	for i, entry := range c.Cast {
		credits.Cast[i] = CreditEntry{
			Name:        entry.Name,
			Character:   entry.Character,
			ProfilePath: entry.ProfilePath,
		}
	}
	for i, entry := range c.Crew {
		credits.Crew[i] = CrewCredit{
			Name:       entry.Name,
			Job:        entry.Job,
			Department: entry.Department,
		}
	}
	return credits
}

// CreditsFromSeries normalizes the TheTVDB characters list. The payload
// carries no crew data, so the crew slice stays empty.
func CreditsFromSeries(characters []tvdb.Character) Credits {
	credits := Credits{
		Cast: make([]CreditEntry, len(characters)),
	}
	for i, ch := range characters {
		credits.Cast[i] = CreditEntry{
			Name:        ch.PersonName,
			Character:   ch.Name,
			ProfilePath: ch.Image,
		}
	}
	return credits
}
