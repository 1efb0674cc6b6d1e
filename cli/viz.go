// ABOUTME: Visualization CLI commands
// ABOUTME: Pipeline funnel graph output to stdout or a file
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/pipelinepro/services"
	"github.com/harperreed/pipelinepro/viz"
)

// VizPipelineCommand generates the pipeline funnel graph as DOT.
func VizPipelineCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("viz-pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	dot, err := viz.GeneratePipelineGraph(context.Background(), svc.Deals)
	if err != nil {
		return fmt.Errorf("failed to generate pipeline graph: %w", err)
	}

	if *output == "" {
		fmt.Println(dot)
		return nil
	}

	if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	fmt.Printf("✓ Pipeline graph written to %s\n", *output)
	return nil
}
