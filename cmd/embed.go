package cmd

import (
	"context"
	"fmt"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/spf13/cobra"
)

var embedCmd = &cobra.Command{
	Use:   "embed <image-file>",
	Short: "Compute the face template for an image",
	Long: `Compute the face template for a local image file.
The largest detected face is selected, its embedding normalized and printed
as a base64 template usable with verify.

Examples:
  # Print the template for a portrait
  face-verify embed portrait.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	svc, client := newService(cfg)

	payload, err := imagePayloadFromFile(args[0])
	if err != nil {
		return err
	}

	result, err := svc.Embed(context.Background(), payload)
	if err != nil {
		return fmt.Errorf("computing template: %w", err)
	}

	fmt.Printf("Model: %s\n", client.Model())
	fmt.Println(result.Template)
	return nil
}
