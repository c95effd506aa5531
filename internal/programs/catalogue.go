package programs

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:embed catalogue.csv
var builtinCatalogue string

var ErrProgramNotFound = errors.New("program not found")

type SortBy string

const (
	SortByTitle      SortBy = "title"
	SortByDifficulty SortBy = "difficulty"
	SortByDuration   SortBy = "duration"
	SortByExercises  SortBy = "exercises"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortByTitle, SortByDifficulty, SortByDuration, SortByExercises:
		return true
	default:
		return false
	}
}

type Filter struct {
	Query      string
	Difficulty Difficulty
	Sort       SortBy
}

type Summary struct {
	Total          int          `json:"total"`
	Difficulties   []Difficulty `json:"difficulties"`
	TotalExercises int          `json:"totalExercises"`
	AvgExercises   int          `json:"avgExercises"`
}

// Catalogue is an immutable, in-memory list of programs.
type Catalogue struct {
	programs []Program
	byID     map[int]Program
}

func NewBuiltinCatalogue() (*Catalogue, error) {
	return NewCatalogue(csv.NewReader(strings.NewReader(builtinCatalogue)))
}

func NewCatalogue(reader *csv.Reader) (*Catalogue, error) {
	c := &Catalogue{
		byID: make(map[int]Program),
	}

	reader.Comma = ';'
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// ID;TITLE;DESCRIPTION;WEEKS;SESSIONS;DIFFICULTY;CALORIES;EXERCISES
		if len(record) != 8 {
			return nil, fmt.Errorf("record [%s] does not have 8 elements", record)
		}

		program, err := parseProgram(record)
		if err != nil {
			return nil, fmt.Errorf("program [%s]: %w", record[0], err)
		}
		if _, exists := c.byID[program.ID]; exists {
			return nil, fmt.Errorf("duplicate program id %d", program.ID)
		}
		c.programs = append(c.programs, program)
		c.byID[program.ID] = program
	}

	log.Debugf("programs catalogue read %d programs", len(c.programs))

	return c, nil
}

func parseProgram(record []string) (Program, error) {
	id, err := strconv.Atoi(record[0])
	if err != nil {
		return Program{}, fmt.Errorf("id: %w", err)
	}
	weeks, err := strconv.Atoi(record[3])
	if err != nil {
		return Program{}, fmt.Errorf("weeks: %w", err)
	}
	sessions, err := strconv.Atoi(record[4])
	if err != nil {
		return Program{}, fmt.Errorf("sessions: %w", err)
	}
	difficulty := Difficulty(record[5])
	if !difficulty.Valid() {
		return Program{}, fmt.Errorf("unknown difficulty %q", record[5])
	}
	exercises, err := parseExercises(record[7])
	if err != nil {
		return Program{}, err
	}

	return Program{
		ID:              id,
		Title:           record[1],
		Description:     record[2],
		DurationWeeks:   weeks,
		SessionsPerWeek: sessions,
		Difficulty:      difficulty,
		Calories:        record[6],
		Exercises:       exercises,
	}, nil
}

func (c *Catalogue) Get(id int) (Program, error) {
	program, ok := c.byID[id]
	if !ok {
		return Program{}, ErrProgramNotFound
	}
	return program, nil
}

// Find returns matching programs in the requested order. The query matches
// title or description case-insensitively. Equal keys keep catalogue order.
func (c *Catalogue) Find(filter Filter) []Program {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	found := make([]Program, 0, len(c.programs))
	for _, p := range c.programs {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if filter.Difficulty != "" && p.Difficulty != filter.Difficulty {
			continue
		}
		found = append(found, p)
	}

	slices.SortStableFunc(found, func(a, b Program) int {
		switch filter.Sort {
		case SortByDifficulty:
			return difficultyRank[a.Difficulty] - difficultyRank[b.Difficulty]
		case SortByDuration:
			return a.DurationWeeks - b.DurationWeeks
		case SortByExercises:
			return len(b.Exercises) - len(a.Exercises)
		default:
			return strings.Compare(a.Title, b.Title)
		}
	})
	return found
}

// Summary describes the whole catalogue, regardless of any filter.
func (c *Catalogue) Summary() Summary {
	summary := Summary{
		Total:        len(c.programs),
		Difficulties: []Difficulty{},
	}
	for _, p := range c.programs {
		if !slices.Contains(summary.Difficulties, p.Difficulty) {
			summary.Difficulties = append(summary.Difficulties, p.Difficulty)
		}
		summary.TotalExercises += len(p.Exercises)
	}
	if summary.Total > 0 {
		summary.AvgExercises = int(math.Round(float64(summary.TotalExercises) / float64(summary.Total)))
	}
	return summary
}
