// Command taskboard-reporter prints the plain-text task status report
// the API's report endpoint relays. It connects to the same database
// the server uses and counts tasks per status.
package main

import (
	"context"
	"fmt"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "taskboard-reporter:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, "SELECT status FROM tasks")
	if err != nil {
		return fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Status]int)
	total := 0
	for rows.Next() {
		var status domain.Status
		if err := rows.Scan(&status); err != nil {
			return fmt.Errorf("scanning status: %w", err)
		}
		counts[status]++
		total++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading tasks: %w", err)
	}

	if total == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println("--- Task Status Report ---")
	fmt.Printf("Total Tasks: %d\n", total)
	fmt.Printf("Pending: %d\n", counts[domain.StatusPending])
	fmt.Printf("In-Progress: %d\n", counts[domain.StatusInProgress])
	fmt.Printf("Completed: %d\n", counts[domain.StatusCompleted])
	return nil
}
