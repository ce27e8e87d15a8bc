package cmd

import (
	"context"
	"fmt"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <image-file>",
	Short: "Verify an image against enrolled templates",
	Long: `Verify the face in a local image file against a template file
produced by enroll. Prints the decision and the best cosine distance.

Examples:
  # Verify against all enrolled templates with the default threshold
  face-verify verify probe.jpg --templates templates.yaml

  # Use a stricter threshold
  face-verify verify probe.jpg --templates templates.yaml --threshold 0.3`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("templates", "templates.yaml", "Template file produced by enroll")
	verifyCmd.Flags().Float64("threshold", 0, "Cosine distance threshold (0 = model default)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	svc, client := newService(cfg)

	tf, err := loadTemplateFile(mustGetString(cmd, "templates"))
	if err != nil {
		return err
	}
	if tf.Model != "" && tf.Model != client.Model() {
		fmt.Printf("Warning: templates were enrolled with %s, current model is %s\n", tf.Model, client.Model())
	}

	names := tf.sortedNames()
	templates := make([]string, len(names))
	for i, name := range names {
		templates[i] = tf.Templates[name]
	}

	payload, err := imagePayloadFromFile(args[0])
	if err != nil {
		return err
	}

	var threshold *float64
	if thr := mustGetFloat64(cmd, "threshold"); thr > 0 {
		threshold = &thr
	}

	result, err := svc.Verify(context.Background(), payload, templates, threshold)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if result.Match {
		fmt.Printf("MATCH (distance %.4f <= threshold %.4f)\n", result.BestDistance, result.Threshold)
	} else {
		fmt.Printf("NO MATCH (distance %.4f > threshold %.4f)\n", result.BestDistance, result.Threshold)
	}
	fmt.Printf("Model: %s, templates compared: %d\n", result.Model, len(templates))
	return nil
}
