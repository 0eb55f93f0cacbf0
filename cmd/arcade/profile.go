package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the player profile",
	Long: `Show the shared player profile: points, streak, favorites and theme.

Examples:
  arcade profile
  arcade profile name Ada
  arcade profile name Ada 🚀
  arcade profile favorite snake
  arcade profile accent '#22c55e'
  arcade profile scale 1.25
  arcade profile users`,
	Args: cobra.NoArgs,
	RunE: withProfile(showProfile),
}

func init() {
	profileCmd.AddCommand(&cobra.Command{
		Use:   "name <name> [avatar]",
		Short: "Set the display name and avatar",
		Args:  cobra.RangeArgs(1, 2),
		RunE: withProfile(func(p *profile.Store, args []string) error {
			id := profile.Identity{Name: args[0], Avatar: p.Snapshot().Identity.Avatar}
			if len(args) == 2 {
				id.Avatar = args[1]
			}
			if err := p.SetIdentity(id); err != nil {
				return err
			}
			return showProfile(p, nil)
		}),
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "favorite <game>",
		Short: "Toggle a game as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(p *profile.Store, args []string) error {
			if err := requireGame(args[0]); err != nil {
				return err
			}
			fav, err := p.ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			if fav {
				fmt.Printf("%s added to favorites\n", args[0])
			} else {
				fmt.Printf("%s removed from favorites\n", args[0])
			}
			return nil
		}),
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "accent <#rrggbb>",
		Short: "Set the theme accent color",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(p *profile.Store, args []string) error {
			return p.SetThemeAccent(args[0])
		}),
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "scale <factor>",
		Short: "Set the UI scale",
		Args:  cobra.ExactArgs(1),
		RunE: withProfile(func(p *profile.Store, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid scale %q: %w", args[0], err)
			}
			return p.SetScale(v)
		}),
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List the SSH users that have a profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileUsers,
	})
}

// runProfileUsers lists the namespaces created by `arcade serve`.
func runProfileUsers(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	if e.store == nil {
		return errors.New("profiles of SSH users need a database, see --db")
	}

	keys, err := e.store.Keys("user:")
	if err != nil {
		return err
	}
	var users []string
	for _, k := range keys {
		name, _, ok := strings.Cut(strings.TrimPrefix(k, "user:"), ":")
		if ok && (len(users) == 0 || users[len(users)-1] != name) {
			users = append(users, name)
		}
	}

	if len(users) == 0 {
		fmt.Println("No SSH users yet.")
		return nil
	}
	for _, u := range users {
		prof, err := profile.Open(e.store, profile.WithNamespace(u))
		if err != nil {
			return err
		}
		snap := prof.Snapshot()
		fmt.Printf("  %-16s  %s %-12s  %6d points  streak %d\n",
			u, snap.Identity.Avatar, snap.Identity.Name, snap.Points, snap.Streak)
	}
	return nil
}

// withProfile opens the profile around fn.
func withProfile(fn func(*profile.Store, []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()
		return fn(e.profile, args)
	}
}

func showProfile(p *profile.Store, _ []string) error {
	snap := p.Snapshot()
	fmt.Printf("%s %s\n", snap.Identity.Avatar, snap.Identity.Name)
	fmt.Println()
	fmt.Printf("  Points:    %d\n", snap.Points)
	fmt.Printf("  Streak:    %d\n", snap.Streak)
	fmt.Printf("  Favorites: %v\n", snap.Favorites)
	fmt.Printf("  Accent:    %s\n", snap.ThemeAccent)
	fmt.Printf("  Scale:     %g\n", snap.Scale)
	return nil
}
