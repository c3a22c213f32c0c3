package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tf2schema-service/internal/adapters/secondary/schemafile"
	"tf2schema-service/internal/adapters/secondary/steam"
	"tf2schema-service/internal/config"
	"tf2schema-service/internal/core/domain"
	"tf2schema-service/internal/core/services"
)

// FetchCmd downloads the schema from Steam and writes it to a file.
func FetchCmd() *cobra.Command {
	var file string
	var apiKey string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the item schema from the Steam Web API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if apiKey != "" {
				cfg.Steam.APIKey = apiKey
			}
			if file != "" {
				cfg.Schema.FilePath = file
			}

			steamClient := steam.NewClient(&cfg.Steam)
			store := schemafile.NewStore(cfg.Schema.FilePath)
			manager := services.NewSchemaManagerService(steamClient, store, nil, services.ManagerOptions{
				SaveToFile: true,
			})

			schema, err := manager.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d items and %d effects to %s\n",
				len(schema.Items), len(schema.Effects), cfg.Schema.FilePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file path (default schema.json)")
	cmd.Flags().StringVarP(&apiKey, "key", "k", "", "Steam API key (default STEAM_API_KEY)")

	return cmd
}

// NameCmd resolves a SKU to its display name against a local schema file.
func NameCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "name <sku>",
		Short: "Resolve a SKU to its display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(cmd, file)
			if err != nil {
				return err
			}

			sku, err := domain.ParseSKU(args[0])
			if err != nil {
				return err
			}
			name, err := schema.NameFromSKU(sku)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file path (default schema.json)")

	return cmd
}

// SKUCmd resolves a display name to its SKU against a local schema file.
func SKUCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sku <name>",
		Short: "Resolve a display name to its SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(cmd, file)
			if err != nil {
				return err
			}

			sku, err := schema.SKUFromName(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sku.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file path (default schema.json)")

	return cmd
}

// ItemCmd prints a schema item by defindex.
func ItemCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "item <defindex>",
		Short: "Print a schema item by defindex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defindex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid defindex %q", args[0])
			}

			schema, err := loadSchema(cmd, file)
			if err != nil {
				return err
			}

			item, err := schema.ItemByDefindex(defindex)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(item)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file path (default schema.json)")

	return cmd
}

func loadSchema(cmd *cobra.Command, file string) (*domain.Schema, error) {
	if file == "" {
		file = os.Getenv("SCHEMA_FILE_PATH")
	}
	if file == "" {
		file = "schema.json"
	}

	store := schemafile.NewStore(file)
	schema, err := store.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load schema from %s (run 'tf2schema fetch' first): %w", file, err)
	}
	return schema, nil
}
