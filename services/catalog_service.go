package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
)

// ErrDatasetUnavailable means the USDA dataset could not be loaded. Features
// built on the catalog halt with this error; the rest of the app keeps going.
var ErrDatasetUnavailable = errors.New("nutrition dataset unavailable")

// Display-name normalization is an ordered rule table, evaluated top to
// bottom, first match wins. A rule with variants checks its qualifiers in
// order; a rule with an empty name falls through to the title-cased default.
type nameVariant struct {
	match string
	name  string
}

type nameRule struct {
	match    string
	variants []nameVariant
	name     string
}

var displayNameRules = []nameRule{
	{match: "rice", variants: []nameVariant{
		{match: "brown", name: "Brown Rice"},
		{match: "wild", name: "Wild Rice"},
	}, name: "White Rice"},
	{match: "chick", name: "Chicken"},
	{match: "tomato", name: "Tomato"},
	{match: "butter", name: "Butter"},
	{match: "milk", name: "Milk"},
	{match: "soup", variants: []nameVariant{
		{match: "tomato", name: "Tomato Soup"},
		{match: "chick", name: "Chicken Soup"},
	}},
}

// Raw descriptions containing any of these are dropped from the catalog
// when ExcludeJunkFood is on.
var junkFoodDenylist = []string{
	"candy", "syrup", "soda", "soft drink", "chocolate",
	"cookie", "cake", "doughnut", "frosting", "gelatin", "chips",
}

type CatalogOptions struct {
	ExcludeJunkFood bool
}

// CatalogService builds the lookup of canonical foods from the raw USDA
// dataset and caches it for the process lifetime. Build may be called again
// (the dataset watcher does) and swaps the snapshot atomically.
type CatalogService struct {
	path   string
	opts   CatalogOptions
	logger *slog.Logger

	mu         sync.RWMutex
	entries    map[string]models.CatalogEntry
	byCategory map[models.Category][]models.CatalogEntry
	loadErr    error
}

func NewCatalogService(path string, opts CatalogOptions, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		path:    path,
		opts:    opts,
		logger:  logger,
		loadErr: ErrDatasetUnavailable,
	}
}

// Build parses the dataset, normalizes display names, averages macros per
// display name and assigns categories. Numeric fields that fail to parse are
// treated as missing and excluded from the averages.
func (s *CatalogService) Build() error {
	f, err := os.Open(s.path)
	if err != nil {
		return s.buildFailed(fmt.Errorf("%w: %v", ErrDatasetUnavailable, err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil || len(rows) < 1 {
		return s.buildFailed(fmt.Errorf("%w: parsing %s: %v", ErrDatasetUnavailable, s.path, err))
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	type accumulator struct {
		sums   [4]float64
		counts [4]int
	}
	macros := []string{"Calories", "Protein", "Carbohydrate", "Fat"}
	groups := map[string]*accumulator{}

	for _, row := range rows[1:] {
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		desc := strings.TrimSpace(field("Description"))
		if desc == "" {
			continue
		}
		if s.opts.ExcludeJunkFood && matchesDenylist(desc) {
			continue
		}

		name := displayName(desc)
		acc := groups[name]
		if acc == nil {
			acc = &accumulator{}
			groups[name] = acc
		}
		for i, col := range macros {
			v, err := strconv.ParseFloat(strings.TrimSpace(field(col)), 64)
			if err != nil {
				continue
			}
			acc.sums[i] += v
			acc.counts[i]++
		}
	}

	entries := make(map[string]models.CatalogEntry, len(groups))
	for name, acc := range groups {
		avg := func(i int) float64 {
			if acc.counts[i] == 0 {
				return 0
			}
			return acc.sums[i] / float64(acc.counts[i])
		}
		entry := models.CatalogEntry{
			DisplayName: name,
			Calories:    avg(0),
			Protein:     avg(1),
			Carbs:       avg(2),
			Fat:         avg(3),
		}
		entry.Category = categorize(entry)
		entries[name] = entry
	}

	fillEmptyCategories(entries)

	byCategory := map[models.Category][]models.CatalogEntry{}
	for _, entry := range entries {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}
	for _, list := range byCategory {
		sort.Slice(list, func(i, j int) bool { return list[i].DisplayName < list[j].DisplayName })
	}

	s.mu.Lock()
	s.entries = entries
	s.byCategory = byCategory
	s.loadErr = nil
	s.mu.Unlock()

	s.logger.Info("catalog built", "entries", len(entries), "path", s.path)
	return nil
}

// buildFailed records the error only while no snapshot exists. A failed
// rebuild leaves the previous snapshot serving.
func (s *CatalogService) buildFailed(err error) error {
	s.mu.Lock()
	if s.entries == nil {
		s.loadErr = err
	}
	s.mu.Unlock()
	return err
}

// Entries returns every catalog entry sorted by display name.
func (s *CatalogService) Entries() ([]models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]models.CatalogEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// ByCategory returns the entries of one category sorted by display name.
func (s *CatalogService) ByCategory(cat models.Category) ([]models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]models.CatalogEntry(nil), s.byCategory[cat]...), nil
}

func (s *CatalogService) Lookup(displayName string) (models.CatalogEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return models.CatalogEntry{}, false, s.loadErr
	}
	entry, ok := s.entries[displayName]
	return entry, ok, nil
}

// Search matches display names by case-insensitive substring, for the
// logging page's autocomplete.
func (s *CatalogService) Search(query string) ([]models.CatalogEntry, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}
	var out []models.CatalogEntry
	for _, entry := range all {
		if strings.Contains(strings.ToLower(entry.DisplayName), query) {
			out = append(out, entry)
		}
	}
	return out, nil
}

// Watch rebuilds the catalog whenever the dataset file changes. The watcher
// only ever swaps the cached snapshot; a failed rebuild keeps the previous
// one.
func (s *CatalogService) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating dataset watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are caught.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", s.path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.Build(); err != nil {
					s.logger.Warn("catalog rebuild failed, keeping previous snapshot", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("dataset watcher error", "error", err)
			}
		}
	}()
	return nil
}

func displayName(desc string) string {
	lower := strings.ToLower(desc)
	for _, rule := range displayNameRules {
		if !strings.Contains(lower, rule.match) {
			continue
		}
		for _, v := range rule.variants {
			if strings.Contains(lower, v.match) {
				return v.name
			}
		}
		if rule.name != "" {
			return rule.name
		}
	}
	head := strings.TrimSpace(strings.SplitN(desc, ",", 2)[0])
	return cases.Title(language.English).String(strings.ToLower(head))
}

func matchesDenylist(desc string) bool {
	lower := strings.ToLower(desc)
	for _, word := range junkFoodDenylist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Deterministic heuristic, first match wins.
func categorize(e models.CatalogEntry) models.Category {
	switch {
	case e.Calories <= 450 && e.Fat <= 25:
		return models.CategoryBreakfast
	case e.Calories >= 300 && e.Calories <= 700 && e.Fat <= 40:
		return models.CategoryLunch
	case e.Calories >= 350 && e.Protein >= 15:
		return models.CategoryDinner
	default:
		return models.CategoryLunch
	}
}

// fillEmptyCategories reassigns entries so each of Breakfast, Lunch and
// Dinner has at least one member, preferring donors from categories that
// keep a member after giving one up. Downstream planners assume every
// category is populated.
func fillEmptyCategories(entries map[string]models.CatalogEntry) {
	counts := map[models.Category]int{}
	for _, entry := range entries {
		counts[entry.Category]++
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, cat := range models.Categories {
		if counts[cat] > 0 {
			continue
		}
		donor := ""
		for _, name := range names {
			if counts[entries[name].Category] > 1 {
				donor = name
				break
			}
		}
		if donor == "" && len(names) > 0 {
			donor = names[0]
		}
		if donor == "" {
			continue
		}
		entry := entries[donor]
		counts[entry.Category]--
		entry.Category = cat
		counts[cat]++
		entries[donor] = entry
	}
}
