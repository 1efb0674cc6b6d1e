// ABOUTME: Entry point for the Pipeline Pro TUI and CLI
// ABOUTME: Routes to the TUI or CRM commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harperreed/pipelinepro/cli"
	"github.com/harperreed/pipelinepro/config"
	"github.com/harperreed/pipelinepro/seed"
	"github.com/harperreed/pipelinepro/services"
	"github.com/harperreed/pipelinepro/tui"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("pipelinepro version %s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()

	stores, err := seed.Load(cfg.SeedDir)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	args := flag.Args()

	// No command launches the TUI with simulated latency.
	if len(args) == 0 {
		svc := newRegistry(stores, services.ClockDelayer{Scale: cfg.LatencyScale})
		if err := tui.Run(svc); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}
		return
	}

	// CLI commands skip the simulated latency; it is only there to
	// make the TUI feel like it talks to a backend.
	svc := newRegistry(stores, services.NopDelayer{})

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		if err := runCRMCommand(svc, commandArgs[0], commandArgs[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		if len(commandArgs) == 0 || commandArgs[0] != "pipeline" {
			fmt.Println("Error: viz requires the 'pipeline' subcommand")
			printUsage()
			os.Exit(1)
		}
		if err := cli.VizPipelineCommand(svc, commandArgs[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCRMCommand(svc *services.Registry, command string, args []string) error {
	switch command {
	case "add-contact":
		return cli.AddContactCommand(svc, args)
	case "list-contacts":
		return cli.ListContactsCommand(svc, args)
	case "update-contact":
		return cli.UpdateContactCommand(svc, args)
	case "delete-contact":
		return cli.DeleteContactCommand(svc, args)

	case "add-deal":
		return cli.AddDealCommand(svc, args)
	case "list-deals":
		return cli.ListDealsCommand(svc, args)
	case "move-deal":
		return cli.MoveDealCommand(svc, args)
	case "delete-deal":
		return cli.DeleteDealCommand(svc, args)
	case "pipeline":
		return cli.PipelineCommand(svc, args)

	case "add-task":
		return cli.AddTaskCommand(svc, args)
	case "list-tasks":
		return cli.ListTasksCommand(svc, args)

	case "log-activity":
		return cli.LogActivityCommand(svc, args)
	case "list-activities":
		return cli.ListActivitiesCommand(svc, args)

	default:
		fmt.Printf("Unknown crm command: %s\n\n", command)
		printUsage()
		os.Exit(1)
		return nil
	}
}

func newRegistry(stores *seed.Stores, delay services.Delayer) *services.Registry {
	return services.NewRegistry(stores.Contacts, stores.Deals, stores.Tasks, stores.Activities, delay)
}

func printUsage() {
	fmt.Printf(`pipelinepro v%s - Pipeline Pro CRM

USAGE:
  pipelinepro [global flags] [command] [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit

COMMANDS:
  (none)                 Launch the interactive TUI
  crm                    CRM management commands
  viz pipeline           Generate the pipeline funnel graph

CRM COMMANDS:
  pipelinepro crm add-contact      Add a new contact
    --first-name <name>              First name (required)
    --last-name <name>               Last name (required)
    --email <email>                  Email address (required)
    --phone <phone>                  Phone number
    --company <company>              Company name
    --position <title>               Job title
    --tags <a,b,c>                   Comma-separated tags

  pipelinepro crm list-contacts    List contacts
    --query <text>                   Search across name, email, company, position, tags
    --company <company>              Filter by company
    --tags <a,b,c>                   Filter by tags (any match)

  pipelinepro crm update-contact [flags] <id>   Update a contact
  pipelinepro crm delete-contact <id>           Delete a contact

  pipelinepro crm add-deal         Add a new deal
    --title <title>                  Deal title (required)
    --value <amount>                 Deal value (required)
    --stage <stage>                  lead/qualified/proposal/negotiation/closed-won/closed-lost
    --probability <pct>              Win probability (default: derived from stage)
    --contact <id>                   Contact ID (required)
    --close-date <YYYY-MM-DD>        Expected close date

  pipelinepro crm list-deals       List deals (--stage, --contact filters)
  pipelinepro crm move-deal --stage <stage> <id>  Move a deal between stages
  pipelinepro crm delete-deal <id>                Delete a deal
  pipelinepro crm pipeline                        Per-stage pipeline summary

  pipelinepro crm add-task         Add a task (--title, --due required)
  pipelinepro crm list-tasks       List tasks

  pipelinepro crm log-activity     Log an activity (--type, --subject, --content required)
  pipelinepro crm list-activities  List activities (--contact filter)

VIZ COMMANDS:
  pipelinepro viz pipeline         Pipeline funnel graph as DOT
    --output <file>                  Output file (default: stdout)

ENVIRONMENT:
  PIPELINEPRO_LATENCY_SCALE        Scale simulated latency (0 disables)
  PIPELINEPRO_SEED_DIR             Directory of seed JSON overrides

EXAMPLES:
  # Launch the TUI
  pipelinepro

  # Add a contact
  pipelinepro crm add-contact --first-name "John" --last-name "Smith" --email "john@acme.com"

  # Add a deal for contact 1
  pipelinepro crm add-deal --title "Enterprise License" --value 50000 --stage proposal --contact 1

  # Show the pipeline
  pipelinepro crm pipeline

`, version)
}
