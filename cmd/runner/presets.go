package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets of the active configuration.

With --yaml the whole effective configuration is printed, ready to be
saved as ~/.float-runner/configs/runner.yaml and edited.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the effective configuration as YAML")
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if flagYAML {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-8s  %5s  %8s  %5s  %7s  %7s  %6s  %s\n",
		"Name", "Speed", "Obstacle", "Coin", "Gravity", "Impulse", "Height", "Pairs")
	fmt.Printf("  %-8s  %5s  %8s  %5s  %7s  %7s  %6s  %s\n",
		"----", "-----", "--------", "----", "-------", "-------", "------", "-----")

	for _, p := range cfg.Presets {
		marker := " "
		if p.Name == cfg.DefaultDifficulty {
			marker = "*"
		}
		fmt.Printf("%s %-8s  %5.1f  %8.0f  %5.0f  %7.1f  %7.1f  %6.0f  %t\n",
			marker, p.Name, p.GameSpeed, p.ObstacleFrequency, p.CoinFrequency,
			p.Gravity, p.FloatImpulse, p.ObstacleHeight, p.AllowMultipleObstacles)
	}

	fmt.Println()
	fmt.Println("* default. Run 'runner play --difficulty <name>' to pick one.")
}
