package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snograph/snograph/graph"
	"github.com/snograph/snograph/internal/config"
	"github.com/snograph/snograph/internal/telemetry"
	"github.com/snograph/snograph/rf2"
)

var (
	groupsConfigPath string
	groupsConceptID  int64
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Match a concept's stated relationship groups against its inferred ones",
	Long: `groups loads both views and, for one concept, checks each stated
relationship group for an inferred group with the same content. Groups are
matched by content hash, so the group numbers the classifier assigned do
not matter. Ungrouped relationships (group 0) are not compared.`,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsConfigPath, "config", "c", "snograph.yaml", "path to the configuration file")
	groupsCmd.Flags().Int64Var(&groupsConceptID, "concept", 0, "concept id to check")
	_ = groupsCmd.MarkFlagRequired("concept")
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(groupsConfigPath)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	shutdown, err := telemetry.Init(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(cmd.Context()); err != nil {
			logger.Warn("failed to flush spans", "error", err)
		}
	}()

	hasher, err := graph.NewType5Hasher(cfg.HashNamespace)
	if err != nil {
		return err
	}
	views, err := graph.NewViews(hasher)
	if err != nil {
		return err
	}
	if err := loadViews(ctx, logger, cfg, views); err != nil {
		return err
	}

	stated, ok := views.GetConcept(groupsConceptID, rf2.Stated)
	if !ok {
		return fmt.Errorf("concept %d not found in stated view", groupsConceptID)
	}
	inferred, ok := views.GetConcept(groupsConceptID, rf2.Inferred)
	if !ok {
		return fmt.Errorf("concept %d not found in inferred view", groupsConceptID)
	}

	for group := 1; group <= stated.MaxGroupID(); group++ {
		members := stated.RelationshipsInGroup(group)
		if len(members) == 0 {
			continue
		}

		hash, err := views.Stated.GroupHash(stated, group)
		if err != nil {
			return err
		}
		matches, err := views.Inferred.FindEquivalentGroup(inferred, hash, members[0])
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			logger.Warn("stated group has no inferred counterpart",
				"concept", groupsConceptID, "group", group, "members", len(members))
			continue
		}
		logger.Info("stated group matched by content",
			"concept", groupsConceptID,
			"group", group,
			"inferredGroup", matches[0].Group,
			"members", len(members))
	}
	return nil
}
