// ABOUTME: Pipeline funnel graph generation
// ABOUTME: Renders per-stage deal aggregates as a graphviz DOT chain
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// GeneratePipelineGraph renders the sales funnel as DOT: one node per
// stage labeled with its deal count and summed value, chained in
// funnel order.
func GeneratePipelineGraph(ctx context.Context, deals *services.DealService) (string, error) {
	stats, err := deals.GetPipelineStats(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch pipeline stats: %w", err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	var prev *cgraph.Node
	for _, stage := range models.PipelineOrder {
		st := stats[stage]
		label := fmt.Sprintf("%s\n%d deals / $%.0f", stage, st.Count, st.Value)

		node, err := graph.CreateNodeByName(stage)
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		node.SetLabel(label)
		node.SetShape(cgraph.BoxShape)

		if prev != nil {
			if _, err := graph.CreateEdgeByName("", prev, node); err != nil {
				return "", fmt.Errorf("failed to create stage edge: %w", err)
			}
		}
		prev = node
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
