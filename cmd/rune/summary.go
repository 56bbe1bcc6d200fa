package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"rune/internal/convert"
	"rune/internal/textutil"
	"rune/internal/workspace"
)

const summaryPathWidth = 48

func writeSummary(w io.Writer, res convert.Result) {
	fmt.Fprintf(w, "%s (%s) -> %s\n", textutil.LabelFromPath(res.Input), res.Mode, textutil.TruncateLeft(res.OutputDir, summaryPathWidth))
	fmt.Fprintln(w, summaryTable(res))
	fprintLines(w, []string{
		fmt.Sprintf("Grid:    %d × %d (%s ramp)", res.Manifest.Cols, res.Manifest.Rows, res.Ramp),
		fmt.Sprintf("Frames:  %s", humanize.Comma(int64(res.FrameCount))),
		fmt.Sprintf("Elapsed: %s", res.Elapsed.Round(time.Millisecond)),
		fmt.Sprintf("Run ID:  %s", res.RunID),
	})
}

func summaryTable(res convert.Result) string {
	files := outputFiles(res)
	rows := make([][]string, 0, len(files)+1)
	var total int64
	for _, file := range files {
		total += file.Size
		rows = append(rows, []string{file.Name, humanize.Bytes(uint64(file.Size))})
	}
	rows = append(rows, []string{"total", humanize.Bytes(uint64(total))})
	return renderTable([]string{"File", "Size"}, rows, []columnAlignment{alignLeft, alignRight})
}

// outputFiles lists the output directory, falling back to the paths the run
// reported when the directory cannot be read.
func outputFiles(res convert.Result) []workspace.FileInfo {
	if files, err := workspace.ListFiles(res.OutputDir); err == nil && len(files) > 0 {
		return files
	}
	artifacts := res.Artifacts()
	files := make([]workspace.FileInfo, 0, len(artifacts))
	for _, path := range artifacts {
		file := workspace.FileInfo{Name: filepath.Base(path), Path: path}
		if info, err := os.Stat(path); err == nil {
			file.Size = info.Size()
			file.ModTime = info.ModTime()
		}
		files = append(files, file)
	}
	return files
}
