// Package dataset defines the games.json artifact the scrape pipeline
// publishes and the browsing site consumes. The snapshot is loaded once
// and treated as immutable afterwards.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type GameRecord struct {
	Id       int64  `json:"id"`
	EpicId   string `json:"epicId,omitempty"`
	Name     string `json:"name"`
	Link     string `json:"link"`
	Platform string `json:"platform"`
	// 0..5, zero means unrated
	Rating float64 `json:"rating"`
	// relative path into the site's image directory, empty when no
	// image could be fetched (the site renders a placeholder)
	Image         string `json:"image,omitempty"`
	FirstFreeDate string `json:"firstFreeDate,omitempty"`
	LastFreeDate  string `json:"lastFreeDate,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	Status        string `json:"status,omitempty"`
}

type Statistics struct {
	TotalGames      int            `json:"totalGames"`
	TotalPromotions int            `json:"totalPromotions"`
	FirstGameDate   string         `json:"firstGameDate,omitempty"`
	AvgGamesPerWeek float64        `json:"avgGamesPerWeek"`
	GamesByYear     map[string]int `json:"gamesByYear"`
}

type Snapshot struct {
	LastUpdated   string       `json:"lastUpdated"`
	Statistics    Statistics   `json:"statistics"`
	CurrentGames  []GameRecord `json:"currentGames"`
	UpcomingGames []GameRecord `json:"upcomingGames"`
	AllGames      []GameRecord `json:"allGames"`
}

func Load(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	err := json.NewDecoder(r).Decode(&snap)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	err = snap.Validate()
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate rejects snapshots the engine must not initialize against.
// Optional fields (image, rating, dates) are allowed to be missing on
// individual records, that is recovered downstream.
func (s *Snapshot) Validate() error {
	if s.AllGames == nil {
		return fmt.Errorf("dataset: missing allGames")
	}
	if s.Statistics.GamesByYear == nil {
		return fmt.Errorf("dataset: missing statistics.gamesByYear")
	}
	for i, g := range s.AllGames {
		if g.Name == "" {
			return fmt.Errorf("dataset: allGames[%d] has no name", i)
		}
	}
	return nil
}
