// ABOUTME: Deal CLI commands
// ABOUTME: Deal CRUD, stage moves, and the pipeline summary table
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// AddDealCommand adds a new deal.
func AddDealCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("add-deal", flag.ExitOnError)
	title := fs.String("title", "", "Deal title (required)")
	value := fs.String("value", "", "Deal value (required)")
	stage := fs.String("stage", "", "Stage (default: lead)")
	probability := fs.String("probability", "", "Win probability 0-100 (default: derived from stage)")
	contactID := fs.String("contact", "", "Contact ID (required)")
	closeDate := fs.String("close-date", "", "Expected close date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	vals := forms.Values{
		"title":             *title,
		"value":             *value,
		"stage":             *stage,
		"probability":       *probability,
		"contactId":         *contactID,
		"expectedCloseDate": *closeDate,
	}

	if errs := forms.Validate(forms.KindDeal, vals); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		return fmt.Errorf("invalid deal")
	}

	deal, err := svc.Deals.Create(context.Background(), forms.BuildDeal(vals))
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	fmt.Printf("✓ Deal created: %s (ID: %d)\n", deal.Title, deal.ID)
	fmt.Printf("  Value: $%.0f  Stage: %s  Probability: %.0f%%\n", deal.Value, deal.Stage, deal.Probability)
	return nil
}

// ListDealsCommand lists deals, optionally filtered by stage or contact.
func ListDealsCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("list-deals", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	contact := fs.Int("contact", 0, "Filter by contact ID")
	_ = fs.Parse(args)

	ctx := context.Background()
	var deals []models.Deal
	var err error

	switch {
	case *stage != "":
		deals, err = svc.Deals.GetByStage(ctx, *stage)
	case *contact != 0:
		deals, err = svc.Deals.GetByContactID(ctx, *contact)
	default:
		deals, err = svc.Deals.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to find deals: %w", err)
	}

	if len(deals) == 0 {
		fmt.Println("No deals found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tVALUE\tSTAGE\tPROB\tCLOSE DATE")
	_, _ = fmt.Fprintln(w, "--\t-----\t-----\t-----\t----\t----------")

	for _, d := range deals {
		closeDate := "-"
		if d.ExpectedCloseDate != nil {
			closeDate = d.ExpectedCloseDate.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t$%.0f\t%s\t%.0f%%\t%s\n",
			d.ID, d.Title, d.Value, d.Stage, d.Probability, closeDate)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d deal(s)\n", len(deals))
	return nil
}

// MoveDealCommand moves a deal to a new pipeline stage.
func MoveDealCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("move-deal", flag.ExitOnError)
	stage := fs.String("stage", "", "Target stage (required)")
	_ = fs.Parse(args)

	if !models.ValidStage(*stage) {
		return fmt.Errorf("unknown stage %q", *stage)
	}

	id, err := parseID(fs.Args(), "deal")
	if err != nil {
		return err
	}

	deal, err := svc.Deals.UpdateStage(context.Background(), id, *stage)
	if err != nil {
		return fmt.Errorf("failed to move deal: %w", err)
	}

	fmt.Printf("✓ Deal %d moved to %s\n", deal.ID, deal.Stage)
	return nil
}

// DeleteDealCommand deletes a deal by ID.
func DeleteDealCommand(svc *services.Registry, args []string) error {
	id, err := parseID(args, "deal")
	if err != nil {
		return err
	}

	if err := svc.Deals.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	fmt.Printf("✓ Deal %d deleted\n", id)
	return nil
}

// PipelineCommand prints the per-stage pipeline summary.
func PipelineCommand(svc *services.Registry, _ []string) error {
	stats, err := svc.Deals.GetPipelineStats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch pipeline stats: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STAGE\tDEALS\tVALUE")
	_, _ = fmt.Fprintln(w, "-----\t-----\t-----")

	for _, stage := range models.PipelineOrder {
		st := stats[stage]
		_, _ = fmt.Fprintf(w, "%s\t%d\t$%.0f\n", stage, st.Count, st.Value)
	}
	_ = w.Flush()

	return nil
}
