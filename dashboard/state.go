package dashboard

import "github.com/notblessy/cryptotracker/models"

type Section string

const (
	SectionOverview Section = "overview"
	SectionTrends   Section = "trends"
	SectionMap      Section = "map"
)

var Sections = []Section{SectionOverview, SectionTrends, SectionMap}

func (s Section) Label() string {
	switch s {
	case SectionTrends:
		return "Price Trends"
	case SectionMap:
		return "Global Crypto Exchange Map"
	default:
		return "Overview"
	}
}

func ParseSection(v string) (Section, bool) {
	for _, s := range Sections {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// State is everything one visitor has chosen through the UI controls.
type State struct {
	Section       Section
	Search        string
	SelectedCoin  string
	ShowExchanges bool

	// Flash holds notices shown on the next render only.
	Flash []models.Notice
}

func NewState() State {
	return State{Section: SectionOverview}
}

// TakeFlash returns the pending one-shot notices and clears them.
func (s *State) TakeFlash() []models.Notice {
	flash := s.Flash
	s.Flash = nil
	return flash
}

// Event is a single UI interaction.
type Event interface {
	Apply(State) State
}

type SectionSelected struct{ Section Section }

func (e SectionSelected) Apply(s State) State {
	s.Section = e.Section
	return s
}

type SearchChanged struct{ Query string }

func (e SearchChanged) Apply(s State) State {
	s.Search = e.Query
	return s
}

type CoinSelected struct{ Name string }

func (e CoinSelected) Apply(s State) State {
	s.SelectedCoin = e.Name
	return s
}

type ExchangesToggled struct{ Show bool }

func (e ExchangesToggled) Apply(s State) State {
	s.ShowExchanges = e.Show
	return s
}

// RefreshClicked carries the outcome of the re-fetch the click triggered.
// Failures surface through the refreshed data itself.
type RefreshClicked struct{ Err error }

func (e RefreshClicked) Apply(s State) State {
	if e.Err == nil {
		s.Flash = append(append([]models.Notice(nil), s.Flash...), models.Notice{
			Level: models.NoticeSuccess,
			Text:  MsgRefreshed,
		})
	}
	return s
}
