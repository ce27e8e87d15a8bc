package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <directory>",
	Short: "Enroll every face image in a directory",
	Long: `Compute face templates for all images in a directory and write them
to a template file usable with verify.

Images where no face is detected are reported and skipped.

Examples:
  # Enroll a directory of portraits (5 concurrent workers)
  face-verify enroll ./people --out templates.yaml

  # Use different concurrency
  face-verify enroll ./people --concurrency 2`,
	Args: cobra.ExactArgs(1),
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)

	enrollCmd.Flags().String("out", "templates.yaml", "Output template file")
	enrollCmd.Flags().Int("concurrency", 5, "Number of parallel workers")
}

// listImageFiles returns the image files directly inside a directory.
func listImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func runEnroll(cmd *cobra.Command, args []string) error {
	outPath := mustGetString(cmd, "out")
	concurrency := mustGetInt(cmd, "concurrency")
	if concurrency < 1 {
		concurrency = 1
	}

	cfg := config.Load()
	svc, client := newService(cfg)

	files, err := listImageFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no image files found in %s", args[0])
	}

	fmt.Printf("Enrolling %d images with model %s\n", len(files), client.Model())

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Computing templates"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	ctx := context.Background()
	templates := make(map[string]string)
	var failed []string
	var mu sync.Mutex

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			defer bar.Add(1)

			payload, err := imagePayloadFromFile(path)
			if err != nil {
				mu.Lock()
				failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(path), err))
				mu.Unlock()
				return
			}

			result, err := svc.Embed(ctx, payload)
			if err != nil {
				mu.Lock()
				failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(path), err))
				mu.Unlock()
				return
			}

			mu.Lock()
			templates[filepath.Base(path)] = result.Template
			mu.Unlock()
		}(file)
	}

	wg.Wait()
	fmt.Println()

	if len(templates) == 0 {
		return fmt.Errorf("no faces enrolled (%d failures)", len(failed))
	}

	tf := &templateFile{
		Model:     client.Model(),
		Templates: templates,
	}
	if err := tf.save(outPath); err != nil {
		return err
	}

	fmt.Printf("\nEnrolled %d templates to %s\n", len(templates), outPath)
	if len(failed) > 0 {
		fmt.Printf("Skipped %d images:\n", len(failed))
		for _, f := range failed {
			fmt.Printf("  %s\n", f)
		}
	}
	return nil
}
