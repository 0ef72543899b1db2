package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchfit/pkg/cache"
	"github.com/matzehuels/sketchfit/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var redisAddr, redisPassword, keyPrefix string
	var redisDB int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisAddr != "" {
				if keyPrefix == "" {
					return errors.New(errors.ErrCodeInvalidInput, "--redis-prefix cannot be empty")
				}
				rc, err := cache.NewRedisCache(cmd.Context(), cache.RedisOptions{
					Addr:      redisAddr,
					Password:  redisPassword,
					DB:        redisDB,
					KeyPrefix: keyPrefix,
				})
				if err != nil {
					return err
				}
				defer rc.Close()

				count, err := rc.Clear(cmd.Context())
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "clear redis cache")
				}
				printSuccess("Cleared %d cached charts", count)
				printDetail("Redis: %s", redisAddr)
				return nil
			}

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return err
			}

			printSuccess("Cleared %d cached charts", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&redisAddr, "redis", "", "clear a Redis cache instead of the local one")
	cmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&keyPrefix, "redis-prefix", defaultServePrefix, "only clear keys with this prefix (must not be empty)")

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
