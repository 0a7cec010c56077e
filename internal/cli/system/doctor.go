package system

import (
	"context"
	"fmt"
	"os"
	"time"

	ps "github.com/mitchellh/go-ps"
	"github.com/zalando/go-keyring"

	"github.com/rakesh-arrepu/HHH-sub000/internal/cli"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config dir writable
	if err := checkConfigDir(ctx.ConfigDir); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK\n")
	}

	// Check 2: OS keyring available
	if err := checkKeyring(); err != nil {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   %v\n", err)
		fmt.Printf("   Sessions will not persist across runs.\n")
	} else {
		fmt.Printf("✓ OS keyring: OK\n")
	}

	// Check 3: server reachable
	if err := checkServer(ctx); err != nil {
		fmt.Printf("❌ Server reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Server reachable: OK\n")
	}

	// Check 4: logged in
	if err := checkSession(ctx); err != nil {
		fmt.Printf("⚠ Session: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Session: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: duplicate running instance
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Running instances: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Running instances: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkConfigDir(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(configDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("config dir not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func checkKeyring() error {
	probe := "doctor-probe"
	if err := keyring.Set(constants.AppName, probe, "ok"); err != nil {
		return fmt.Errorf("keyring write failed: %w", err)
	}
	defer keyring.Delete(constants.AppName, probe)
	if _, err := keyring.Get(constants.AppName, probe); err != nil {
		return fmt.Errorf("keyring read failed: %w", err)
	}
	return nil
}

func checkServer(ctx *cli.Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ctx.API.Health(reqCtx)
}

func checkSession(ctx *cli.Context) error {
	if ctx.Session.Token() == "" {
		return fmt.Errorf("not logged in; run 'hhh login'")
	}
	if _, err := ctx.API.Me(context.Background()); err != nil {
		return fmt.Errorf("stored session rejected: %v", err)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %v", now)
	}
	return nil
}

func checkDuplicateProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %w", err)
	}
	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Executable() == constants.AppName && p.Pid() != self {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other %s process(es) running", count, constants.AppName)
	}
	return nil
}
