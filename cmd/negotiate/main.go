package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"freelance-desk/internal/app"
	"freelance-desk/internal/config"
	"freelance-desk/internal/database/seeder"
	"freelance-desk/internal/domain/negotiation"
	"freelance-desk/internal/repository"
	"freelance-desk/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) == 1 {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command := strings.ToLower(os.Args[1])
	switch command {
	case "setup":
		runSetup(ctx, container)
	case "sample":
		runSample(ctx, container)
	case "list":
		runList(ctx, container)
	case "negotiate":
		projectID, clientID, ok := parseIDArgs("negotiate")
		if !ok {
			return
		}
		runNegotiate(ctx, container, projectID, clientID, false)
	case "detailed":
		projectID, clientID, ok := parseIDArgs("detailed")
		if !ok {
			return
		}
		runNegotiate(ctx, container, projectID, clientID, true)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Run without arguments to see available commands.")
	}
}

func printUsage() {
	fmt.Println("Project Negotiation System")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Available commands:")
	fmt.Println("  setup                    - Initialize database tables")
	fmt.Println("  sample                   - Insert sample data")
	fmt.Println("  list                     - List all projects and proposals")
	fmt.Println("  negotiate <pid> <cid>    - Run negotiation analysis")
	fmt.Println("  detailed <pid> <cid>     - Show detailed negotiation results")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  negotiate setup")
	fmt.Println("  negotiate negotiate 1 2")
	fmt.Println("  negotiate detailed 1 2")
}

func parseIDArgs(command string) (int64, int64, bool) {
	if len(os.Args) != 4 {
		fmt.Printf("Usage: negotiate %s <project_id> <client_id>\n", command)
		fmt.Printf("Example: negotiate %s 1 2\n", command)
		return 0, 0, false
	}

	projectID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Println("Error: project_id and client_id must be integers")
		return 0, 0, false
	}
	clientID, err := strconv.ParseInt(os.Args[3], 10, 64)
	if err != nil {
		fmt.Println("Error: project_id and client_id must be integers")
		return 0, 0, false
	}
	return projectID, clientID, true
}

func runSetup(ctx context.Context, c *app.Container) {
	fmt.Println("Setting up database...")
	if err := seeder.EnsureSchema(ctx, c.DB); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	fmt.Println("Database setup complete!")
}

func runSample(ctx context.Context, c *app.Container) {
	if err := seeder.EnsureSchema(ctx, c.DB); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	if err := seeder.SeedDefaults(ctx, c.DB); err != nil {
		log.Fatalf("failed to seed sample data: %v", err)
	}
	fmt.Println("Sample data inserted successfully!")
}

func runList(ctx context.Context, c *app.Container) {
	projectRepo := repository.NewPostgresProjectRepository(c.DB)
	proposalRepo := repository.NewPostgresProposalRepository(c.DB)

	projects, err := projectRepo.List(ctx)
	if err != nil {
		log.Fatalf("failed to list projects: %v", err)
	}

	fmt.Println("\nAVAILABLE PROJECTS:")
	fmt.Println(strings.Repeat("-", 80))
	for _, p := range projects {
		proposals, err := proposalRepo.ListByProject(ctx, p.ID)
		if err != nil {
			log.Fatalf("failed to list proposals: %v", err)
		}

		fmt.Printf("ID: %d | %s\n", p.ID, p.Title)
		fmt.Printf("  Expected: %s, %s\n", formatCurrency(p.ExpectedBudget), formatDays(p.ExpectedTimelineDays))
		fmt.Printf("  Proposals: %d\n", len(proposals))
		for _, pr := range proposals {
			name := pr.ClientName
			if name == "" {
				name = fmt.Sprintf("Client ID %d", pr.ClientID)
			}
			fmt.Printf("    -> %s: %s, %s\n", name, formatCurrency(pr.ProposedBudget), formatDays(pr.ProposedTimelineDays))
		}
		fmt.Println()
	}
}

func runNegotiate(ctx context.Context, c *app.Container, projectID, clientID int64, detailed bool) {
	projectRepo := repository.NewPostgresProjectRepository(c.DB)
	proposalRepo := repository.NewPostgresProposalRepository(c.DB)
	negotiationRepo := repository.NewPostgresNegotiationRepository(c.DB)

	uc := usecase.NewNegotiationUsecase(projectRepo, proposalRepo, negotiationRepo)
	res, err := uc.Negotiate(ctx, projectID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProjectNotFound):
			fmt.Printf("Error: Project with ID %d not found\n", projectID)
		case errors.Is(err, usecase.ErrProposalNotFound):
			fmt.Printf("Error: No proposal found for project %d from client %d\n", projectID, clientID)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	if detailed {
		printDetailedResults(res)
		return
	}
	printNegotiationResults(res)
}

func printNegotiationResults(res negotiation.Result) {
	printFieldLine("Budget", res.Budget, formatCurrency)
	printFieldLine("Timeline", res.Timeline, formatDays)

	d := res.Deliverables
	switch {
	case d.Status == negotiation.StatusNeedsRevision && d.Expected != nil && d.Proposed != nil:
		line := fmt.Sprintf("Deliverables: %s (Expected: %s, Proposed: %s", d.Status, *d.Expected, *d.Proposed)
		if d.Counteroffer != nil {
			line += fmt.Sprintf(", Counteroffer: %d", *d.Counteroffer)
		}
		fmt.Println(line + ")")
	case d.Status == negotiation.StatusRejected && d.Expected != nil && d.Proposed != nil:
		fmt.Printf("Deliverables: %s (Expected: %s, Proposed: %s)\n", d.Status, *d.Expected, *d.Proposed)
	default:
		fmt.Printf("Deliverables: %s\n", d.Status)
	}
}

func printFieldLine(label string, v negotiation.FieldVerdict, format func(*int64) string) {
	switch {
	case v.Status == negotiation.StatusNeedsRevision && v.Expected != nil && v.Proposed != nil:
		line := fmt.Sprintf("%s: %s (Expected: %s, Proposed: %s", label, v.Status, format(v.Expected), format(v.Proposed))
		if v.Counteroffer != nil {
			line += fmt.Sprintf(", Counteroffer: %s", format(v.Counteroffer))
		}
		fmt.Println(line + ")")
	case v.Status == negotiation.StatusRejected && v.Expected != nil && v.Proposed != nil:
		fmt.Printf("%s: %s (Expected: %s, Proposed: %s)\n", label, v.Status, format(v.Expected), format(v.Proposed))
	default:
		fmt.Printf("%s: %s\n", label, v.Status)
	}
}

func printDetailedResults(res negotiation.Result) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("NEGOTIATION RESULTS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Project: %s (ID: %d)\n", res.ProjectName, res.ProjectID)
	fmt.Printf("Client ID: %d\n", res.ClientID)
	fmt.Printf("Overall Status: %s\n", res.OverallStatus)
	fmt.Printf("Summary: %s\n", res.Summary)

	printSection("BUDGET")
	fmt.Printf("Status: %s\n", res.Budget.Status)
	fmt.Printf("Expected: %s\n", formatCurrency(res.Budget.Expected))
	fmt.Printf("Proposed: %s\n", formatCurrency(res.Budget.Proposed))
	if res.Budget.Counteroffer != nil {
		fmt.Printf("Counteroffer: %s\n", formatCurrency(res.Budget.Counteroffer))
	}

	printSection("TIMELINE")
	fmt.Printf("Status: %s\n", res.Timeline.Status)
	fmt.Printf("Expected: %s\n", formatDays(res.Timeline.Expected))
	fmt.Printf("Proposed: %s\n", formatDays(res.Timeline.Proposed))
	if res.Timeline.Counteroffer != nil {
		fmt.Printf("Counteroffer: %s\n", formatDays(res.Timeline.Counteroffer))
	}

	printSection("DELIVERABLES")
	fmt.Printf("Status: %s\n", res.Deliverables.Status)
	fmt.Printf("Expected: %s\n", orNotSpecified(res.Deliverables.Expected))
	fmt.Printf("Proposed: %s\n", orNotSpecified(res.Deliverables.Proposed))
	if res.Deliverables.Counteroffer != nil {
		fmt.Printf("Counteroffer: %d\n", *res.Deliverables.Counteroffer)
	}
}

// printSection centers the title in a 60-wide dashed rule.
func printSection(title string) {
	pad := 60 - len(title)
	left := pad / 2
	right := pad - left
	fmt.Printf("\n%s%s%s\n", strings.Repeat("-", left), title, strings.Repeat("-", right))
}

func formatCurrency(amount *int64) string {
	if amount == nil {
		return "Not specified"
	}
	return "₹" + groupThousands(*amount)
}

func formatDays(days *int64) string {
	if days == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d days", *days)
}

func orNotSpecified(s *string) string {
	if s == nil {
		return "Not specified"
	}
	return *s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
