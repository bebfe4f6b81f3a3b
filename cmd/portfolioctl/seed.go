package main

import (
	"fmt"
	"sort"
	"time"

	"portfolio/database"
	"portfolio/internal/utils"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample articles, projects and site settings",
	Long: `Insert generated sample content. Sample rows use the "sample-" slug
prefix; rows that already exist are skipped.

Examples:
  portfolioctl seed
  portfolioctl seed --articles 200 --projects 30 --rand-seed 42
  portfolioctl seed clean
  portfolioctl seed count`,
	RunE: runSeed,
}

var seedCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete sample content",
	RunE:  runSeedClean,
}

var seedCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show row counts per content table",
	RunE:  runSeedCount,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedCleanCmd)
	seedCmd.AddCommand(seedCountCmd)

	seedCmd.Flags().Int("articles", utils.DefaultNumArticles, "number of sample articles")
	seedCmd.Flags().Int("projects", utils.DefaultNumProjects, "number of sample projects")
	seedCmd.Flags().Int64("rand-seed", 0, "random seed (0 uses the current time)")
	seedCmd.Flags().Bool("migrate", true, "run migrations first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	numArticles, _ := cmd.Flags().GetInt("articles")
	numProjects, _ := cmd.Flags().GetInt("projects")
	randSeed, _ := cmd.Flags().GetInt64("rand-seed")
	migrate, _ := cmd.Flags().GetBool("migrate")

	if numArticles < 0 || numProjects < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	if migrate {
		if err := database.MigrateDatabase(db); err != nil {
			return err
		}
	}

	if err := utils.SeedContent(cmd.Context(), db, numArticles, numProjects, randSeed); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d articles and %d projects (seed %d)\n", numArticles, numProjects, randSeed)
	return nil
}

func runSeedClean(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	removed, err := utils.CleanupSeedContent(cmd.Context(), db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d sample rows\n", removed)
	return nil
}

func runSeedCount(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	counts, err := utils.ContentCounts(cmd.Context(), db)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", table, counts[table])
	}
	return nil
}
