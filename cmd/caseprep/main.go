package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"caseprep/internal/ai"
	"caseprep/internal/casefile"
	"caseprep/internal/config"
	"caseprep/internal/evidence"
	"caseprep/internal/intake"
	"caseprep/internal/logger"
	"caseprep/internal/review"
	"caseprep/internal/schema"
	"caseprep/internal/storage"
	"caseprep/internal/workflow"
)

var (
	rootCmd = &cobra.Command{
		Use:   "caseprep",
		Short: "Intake reconciliation and document assembly for immigration cases",
	}
	caseCmd = &cobra.Command{
		Use:   "case",
		Short: "Manage cases",
	}
	dbPath     string
	outputPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the local case database (SQLite; defaults to the configured path)")

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "draft.txt", "Path to write the assembled draft")

	caseCmd.AddCommand(newCmd)
	caseCmd.AddCommand(listCmd)
	caseCmd.AddCommand(setCmd)
	caseCmd.AddCommand(showCmd)
	caseCmd.AddCommand(reconcileCmd)
	caseCmd.AddCommand(generateCmd)
	caseCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(caseCmd)
}

func initStore() (*storage.SQLiteStore, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath == "" {
		dbPath = cfg.Case.DatabasePath
	}
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return store, cfg, logger.New(cfg.Log.Level, cfg.Log.Format), nil
}

func initAssistant(ctx context.Context, cfg *config.Config) (ai.Assistant, error) {
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("AI API key not configured")
	}
	return ai.NewAssistant(ctx, ai.Options{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
}

func loadCase(ctx context.Context, store *storage.SQLiteStore, id string) (*storage.Case, *schema.CaseType, error) {
	c, err := store.GetCase(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	ct, err := schema.ByID(c.CaseTypeID)
	if err != nil {
		return nil, nil, err
	}
	return c, ct, nil
}

var newCmd = &cobra.Command{
	Use:   "new [case-type] [label]",
	Short: "Create a new case",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ct, err := schema.ByID(args[0])
		if err != nil {
			log.Fatalf("Unknown case type %q. Available: %s", args[0], strings.Join(schema.IDs(), ", "))
		}
		label := ""
		if len(args) > 1 {
			label = args[1]
		}

		store, _, _, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		c, err := store.CreateCase(context.Background(), ct.ID, label)
		if err != nil {
			log.Fatalf("Failed to create case: %v", err)
		}
		fmt.Printf("🆕 Created %s case: %s\n", ct.Name, c.ID)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cases",
	Run: func(cmd *cobra.Command, args []string) {
		store, _, _, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		cases, err := store.ListCases(context.Background())
		if err != nil {
			log.Fatalf("Failed to list cases: %v", err)
		}
		if len(cases) == 0 {
			fmt.Println("No cases yet. Create one with: caseprep case new <case-type>")
			return
		}
		for _, c := range cases {
			fmt.Printf("%s  %-8s  %s  %s\n", c.ID, c.CaseTypeID, c.CreatedAt.Format("2006-01-02"), c.Label)
		}
	},
}

var setCmd = &cobra.Command{
	Use:   "set [case-id] [question-id] [value]",
	Short: "Set one intake field, applying the same normalization as reconciliation",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		caseID, questionID, value := args[0], args[1], args[2]

		store, _, _, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		_, ct, err := loadCase(ctx, store, caseID)
		if err != nil {
			log.Fatalf("%v", err)
		}
		q, ok := ct.Question(questionID)
		if !ok {
			log.Fatalf("Unknown question %q for case type %s", questionID, ct.ID)
		}

		normalized, err := normalizeManualValue(q, value)
		if err != nil {
			log.Fatalf("%v", err)
		}

		form, err := store.LoadFormData(ctx, caseID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}
		form[questionID] = normalized
		if err := store.SaveFormData(ctx, caseID, form); err != nil {
			log.Fatalf("Failed to save form: %v", err)
		}
		fmt.Printf("✅ %s = %s\n", q.Label, normalized)
	},
}

// normalizeManualValue applies the intake normalization rules to a value
// typed on the command line, so manual entry and document extraction agree.
func normalizeManualValue(q *schema.Question, value string) (string, error) {
	switch q.Type {
	case schema.TypeSelect:
		outcome := intake.MatchOption(value, q.Options, q.Vocab)
		if !outcome.OK {
			return "", fmt.Errorf("value %q does not match any option for %s (%s)", value, q.Label, outcome.Reason)
		}
		return outcome.Value, nil
	case schema.TypeDate:
		iso, ok := intake.ParseDate(value)
		if !ok {
			return "", fmt.Errorf("could not parse %q as a date for %s", value, q.Label)
		}
		return iso, nil
	case schema.TypeCheckbox:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "y", "1":
			return "true", nil
		case "false", "no", "n", "0":
			return "false", nil
		}
		return "", fmt.Errorf("checkbox %s takes true or false, got %q", q.Label, value)
	default:
		return strings.TrimSpace(value), nil
	}
}

var showCmd = &cobra.Command{
	Use:   "show [case-id]",
	Short: "Show the intake form and classified documents for a case",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, _, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		c, ct, err := loadCase(ctx, store, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		form, err := store.LoadFormData(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}

		fmt.Printf("Case %s (%s)\n\n", c.ID, ct.Name)
		for _, q := range ct.Questions {
			value := form[q.ID]
			marker := " "
			if q.Required && value == "" {
				marker = "!"
			}
			fmt.Printf(" %s %-28s %s\n", marker, q.Label+":", value)
		}

		docs, err := store.LoadDocuments(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load documents: %v", err)
		}
		if len(docs) > 0 {
			fmt.Println("\nClassified documents:")
			buckets := review.BucketDocuments(ct, docs)
			for _, tab := range ct.Tabs {
				if len(buckets[tab.Label]) == 0 {
					continue
				}
				fmt.Printf("  Tab %s - %s\n", tab.Label, tab.Title)
				for _, d := range buckets[tab.Label] {
					fmt.Printf("    - %s\n", d)
				}
			}
		}
	},
}

// resolveEvidenceDir prefers an explicit argument over the configured
// default evidence directory.
func resolveEvidenceDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if cfg.Case.EvidenceDir != "" {
		return cfg.Case.EvidenceDir, nil
	}
	return "", fmt.Errorf("no evidence directory given and case.evidence_dir is not configured")
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [case-id] [evidence-dir]",
	Short: "Extract intake fields from evidence documents and merge them into the form",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg, zlog, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		c, ct, err := loadCase(ctx, store, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		assistant, err := initAssistant(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize assistant: %v", err)
		}

		form, err := store.LoadFormData(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}
		fileStore := casefile.NewStore()
		fileStore.Replace(form)

		evidenceDir, err := resolveEvidenceDir(args, cfg)
		if err != nil {
			log.Fatalf("%v", err)
		}

		reader := evidence.NewReader(evidence.PlainText{})
		in := workflow.NewIntake(reader, assistant, fileStore, ct, zlog)
		summary, err := in.Run(ctx, evidenceDir)
		if err != nil {
			log.Fatalf("Reconciliation failed: %v", err)
		}

		if err := store.SaveFormData(ctx, c.ID, fileStore.Snapshot()); err != nil {
			log.Fatalf("Failed to save form: %v", err)
		}
		for _, s := range summary.Skipped {
			fmt.Printf("  ⚠️ Skipped %s: %s\n", s.Label, s.Reason)
		}
		fmt.Printf("🎉 Reconciliation complete: %d files, %d fields applied.\n", summary.FilesProcessed, summary.FieldsApplied)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [case-id] [evidence-dir]",
	Short: "Run the full pipeline and assemble a draft filing",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg, zlog, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		c, ct, err := loadCase(ctx, store, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		assistant, err := initAssistant(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize assistant: %v", err)
		}

		form, err := store.LoadFormData(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}
		fileStore := casefile.NewStore()
		fileStore.Replace(form)

		evidenceDir, err := resolveEvidenceDir(args, cfg)
		if err != nil {
			log.Fatalf("%v", err)
		}

		reader := evidence.NewReader(evidence.PlainText{})
		checker := review.NewChecker(assistant, zlog)
		gen := workflow.NewGeneration(reader, assistant, checker, fileStore, ct, zlog)

		result, err := gen.Run(ctx, evidenceDir)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}

		if err := store.SaveDocuments(ctx, c.ID, result.Documents); err != nil {
			log.Fatalf("Failed to save documents: %v", err)
		}
		if err := store.SaveDraft(ctx, c.ID, result.Draft, result.Verdict.HasMinimum, result.Verdict.Missing); err != nil {
			log.Fatalf("Failed to save draft: %v", err)
		}
		if err := os.WriteFile(outputPath, []byte(result.Draft), 0o644); err != nil {
			log.Fatalf("Failed to write draft: %v", err)
		}

		if !result.Verdict.HasMinimum {
			fmt.Println("⚠️ The completeness check flagged this package:")
			for _, m := range result.Verdict.Missing {
				fmt.Printf("  - %s\n", m)
			}
		}
		fmt.Printf("🎉 Draft written to %s\n", outputPath)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [case-id]",
	Short: "Re-run the completeness check over the stored documents",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg, zlog, err := initStore()
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		ctx := context.Background()
		c, ct, err := loadCase(ctx, store, args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		assistant, err := initAssistant(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize assistant: %v", err)
		}

		docs, err := store.LoadDocuments(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load documents: %v", err)
		}
		form, err := store.LoadFormData(ctx, c.ID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}

		buckets := review.BucketDocuments(ct, docs)
		checker := review.NewChecker(assistant, zlog)
		verdict := checker.Check(ctx, buckets, ai.CaseContext{
			CaseTypeID:   ct.ID,
			CaseTypeName: ct.Name,
			ClientName:   form["client_full_name"],
			ClientDOB:    form["client_dob"],
		})

		if verdict.HasMinimum {
			fmt.Println("✅ The package meets the filing minimum.")
			return
		}
		fmt.Println("⚠️ The package may be incomplete:")
		for _, m := range verdict.Missing {
			fmt.Printf("  - %s\n", m)
		}
	},
}
