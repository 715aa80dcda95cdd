package catalog

import (
	"sort"
	"time"

	"travelog/internal/notes"
)

// portfolioSize is the number of images kept per day in the portfolio recap.
const portfolioSize = 3

// Assemble groups entries by date, sorts each day by time ascending, selects
// the per-day portfolio (largest images first, a proxy for the best frames),
// attaches annotations, and computes aggregate counts. Days are ordered by
// ascending date string, which is chronological for YYYY-MM-DD.
func Assemble(entries []Entry, store *notes.Store, now time.Time) Manifest {
	byDate := make(map[string][]Entry)
	var dates []string
	for _, entry := range entries {
		if _, seen := byDate[entry.Date]; !seen {
			dates = append(dates, entry.Date)
		}
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}
	sort.Strings(dates)

	days := make([]Day, 0, len(dates))
	portfolio := make([]Day, 0, len(dates))
	for _, date := range dates {
		items := byDate[date]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Time < items[j].Time
		})

		images := make([]Entry, 0, len(items))
		for _, item := range items {
			if item.Type == TypeImage {
				images = append(images, item)
			}
		}
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].Size > images[j].Size
		})
		if len(images) > portfolioSize {
			images = images[:portfolioSize]
		}

		annotation := store.For(date)
		days = append(days, Day{Date: date, Items: items, Notes: annotation})
		portfolio = append(portfolio, Day{Date: date, Items: images, Notes: annotation})
	}

	return Manifest{
		GeneratedAt: now.Format("2006-01-02T15:04:05"),
		Days:        days,
		Portfolio:   portfolio,
		Counts:      countEntries(entries),
	}
}

func countEntries(entries []Entry) Counts {
	var counts Counts
	for _, entry := range entries {
		switch entry.Type {
		case TypeImage:
			counts.Images++
		case TypeVideo:
			counts.Videos++
		}
		if entry.Live() {
			counts.Live++
		}
	}
	return counts
}
