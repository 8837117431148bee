package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duelhall/encounter-api/internal/orchestrators/encounter"
)

var (
	playCharacterID string
	playMonsterID   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive encounter from the terminal",
	Long:  `Play a combat encounter against the configured Redis store. Useful for exercising the full resolution stack without a client.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playCharacterID, "character", "fighter", "catalog id of the player character")
	playCmd.Flags().StringVar(&playMonsterID, "monster", "goblin", "catalog id of the adversary")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, err := buildService(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	created, err := service.CreateSession(ctx, &encounter.CreateSessionInput{
		CharacterID: playCharacterID,
		MonsterID:   playMonsterID,
	})
	if err != nil {
		return err
	}
	sessionID := created.Session.ID

	fmt.Println(created.Session.Log[0])
	fmt.Println(`commands: attack [weapon], cast <spell>, check <skill> <dc>, init, enemy, narrate, reset, log, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" {
			return nil
		}
		if err := runPlayCommand(ctx, service, sessionID, fields); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

// runPlayCommand dispatches one REPL command and prints any new log lines
func runPlayCommand(ctx context.Context, service encounter.Service, sessionID string, fields []string) error {
	switch fields[0] {
	case "attack":
		weaponID := ""
		if len(fields) > 1 {
			weaponID = fields[1]
		}
		output, err := service.PlayerAttack(ctx, &encounter.PlayerAttackInput{
			SessionID: sessionID,
			WeaponID:  weaponID,
		})
		if err != nil {
			return err
		}
		printTail(output.Log, 2)

	case "cast":
		if len(fields) < 2 {
			return fmt.Errorf("usage: cast <spell-id>")
		}
		output, err := service.CastSpell(ctx, &encounter.CastSpellInput{
			SessionID: sessionID,
			SpellID:   fields[1],
		})
		if err != nil {
			return err
		}
		printTail(output.Log, 2)

	case "check":
		if len(fields) < 3 {
			return fmt.Errorf("usage: check <skill> <dc>")
		}
		dc, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return fmt.Errorf("bad DC %q", fields[len(fields)-1])
		}
		skill := strings.Join(fields[1:len(fields)-1], " ")
		output, err := service.SkillCheck(ctx, &encounter.SkillCheckInput{
			SessionID: sessionID,
			Skill:     skill,
			DC:        dc,
		})
		if err != nil {
			return err
		}
		printTail(output.Log, 1)

	case "init":
		output, err := service.RollInitiative(ctx, &encounter.RollInitiativeInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		printTail(output.Log, 1)

	case "enemy":
		output, err := service.EnemyTurn(ctx, &encounter.EnemyTurnInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		printTail(output.Log, 2)
		fmt.Printf("round %d\n", output.Round)

	case "narrate":
		output, err := service.Narrate(ctx, &encounter.NarrateInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		if output.Narration == "" {
			fmt.Println("no narration available")
		} else {
			fmt.Println(output.Narration)
		}

	case "reset":
		output, err := service.ResetSession(ctx, &encounter.ResetSessionInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		fmt.Println(output.Session.Log[0])

	case "log":
		output, err := service.GetSession(ctx, &encounter.GetSessionInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		for _, line := range output.Session.Log {
			fmt.Println(line)
		}

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}

	return nil
}

// printTail prints up to n trailing log lines
func printTail(log []string, n int) {
	start := len(log) - n
	if start < 0 {
		start = 0
	}
	for _, line := range log[start:] {
		fmt.Println(line)
	}
}
