package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"travelog/internal/catalog"
	"travelog/internal/config"
	"travelog/internal/scan"
)

func newStatusCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report source inventory and derived asset coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			files, err := scan.Scan(cfg.Paths.SourceDir)
			if err != nil {
				return err
			}
			groups, conflicts := scan.Classify(files)

			var images, videos, live int
			for _, group := range groups {
				if group.Live() {
					live++
				}
				if group.Image != nil {
					images++
				}
				if group.Video != nil {
					videos++
				}
			}

			rows := [][]string{
				{"Source directory", cfg.Paths.SourceDir},
				{"Source files", strconv.Itoa(len(files))},
				{"Catalog groups", strconv.Itoa(len(groups))},
				{"Images", strconv.Itoa(images)},
				{"Videos", strconv.Itoa(videos)},
				{"Live pairs", strconv.Itoa(live)},
				{"Derived images", coverage(countDerived(cfg.ImageDir(), "img_"), images)},
				{"Thumbnails", coverage(countDerived(cfg.ThumbDir(), "thumb_"), images)},
				{"Posters", coverage(countDerived(cfg.PosterDir(), "poster_"), videos)},
				{"Transcodes", strconv.Itoa(countDerived(cfg.VideoDir(), "vid_"))},
			}
			rows = append(rows, manifestRows(cfg)...)
			rows = append(rows, annotationRow(cfg))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))

			if len(conflicts) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderConflicts(conflicts))
			}
			return nil
		},
	}
}

// countDerived counts derived outputs in dir by filename prefix. Scratch
// files are dotfiles and never counted.
func countDerived(dir, prefix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			count++
		}
	}
	return count
}

func coverage(have, want int) string {
	return fmt.Sprintf("%d of %d", have, want)
}

func manifestRows(cfg *config.Config) [][]string {
	data, err := os.ReadFile(filepath.Join(cfg.DataDir(), "entries.json"))
	if err != nil {
		return [][]string{{"Manifest", "not built yet"}}
	}
	var manifest catalog.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return [][]string{{"Manifest", "unreadable: " + err.Error()}}
	}
	return [][]string{
		{"Manifest generated", manifest.GeneratedAt},
		{"Manifest days", strconv.Itoa(len(manifest.Days))},
		{"Manifest entries", strconv.Itoa(manifest.Counts.Images + manifest.Counts.Videos)},
	}
}

func annotationRow(cfg *config.Config) []string {
	data, err := os.ReadFile(cfg.NotesPath())
	if err != nil {
		return []string{"Annotated days", "0"}
	}
	byDate := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &byDate); err != nil {
		return []string{"Annotated days", "unreadable"}
	}
	return []string{"Annotated days", strconv.Itoa(len(byDate))}
}
