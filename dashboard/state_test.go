package dashboard

import (
	"errors"
	"testing"

	"github.com/notblessy/cryptotracker/models"
	"github.com/stretchr/testify/assert"
)

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, ok := ParseSection(string(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ParseSection("settings")
	assert.False(t, ok)
}

func TestSectionLabels(t *testing.T) {
	assert.Equal(t, "Overview", SectionOverview.Label())
	assert.Equal(t, "Price Trends", SectionTrends.Label())
	assert.Equal(t, "Global Crypto Exchange Map", SectionMap.Label())
}

func TestEvents(t *testing.T) {
	s := NewState()
	assert.Equal(t, SectionOverview, s.Section)

	s = SectionSelected{Section: SectionMap}.Apply(s)
	s = SearchChanged{Query: "bit"}.Apply(s)
	s = CoinSelected{Name: "Ethereum"}.Apply(s)
	s = ExchangesToggled{Show: true}.Apply(s)

	assert.Equal(t, State{
		Section:       SectionMap,
		Search:        "bit",
		SelectedCoin:  "Ethereum",
		ShowExchanges: true,
	}, s)
}

func TestRefreshClicked(t *testing.T) {
	s := RefreshClicked{}.Apply(NewState())
	assert.Equal(t, []models.Notice{{Level: models.NoticeSuccess, Text: MsgRefreshed}}, s.Flash)

	flash := s.TakeFlash()
	assert.Len(t, flash, 1)
	assert.Empty(t, s.Flash)

	s = RefreshClicked{Err: errors.New("boom")}.Apply(s)
	assert.Empty(t, s.Flash)
}

func TestEventsDoNotMutateInput(t *testing.T) {
	before := NewState()
	before.Flash = []models.Notice{{Level: models.NoticeInfo, Text: "hello"}}

	after := RefreshClicked{}.Apply(before)

	assert.Len(t, before.Flash, 1)
	assert.Len(t, after.Flash, 2)
}
