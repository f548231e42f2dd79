package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/niveshlabs/nivesh/internal/scheduler"
	"github.com/niveshlabs/nivesh/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the job scheduler",
	Long: `Starts the scheduler daemon or manages its jobs.

Registered jobs:
  momentum_refresh - weekday evenings after market close, recomputes
                     change figures and momentum for every stored security

Example:
  go run ./cmd/nivesh scheduler start
  go run ./cmd/nivesh scheduler list
  go run ./cmd/nivesh scheduler run momentum_refresh`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		RunE:  runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run a job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

// initScheduler wires the scheduler with every job registered
func initScheduler() (*scheduler.Scheduler, *deps, error) {
	d, err := buildDeps()
	if err != nil {
		return nil, nil, err
	}

	sched := scheduler.New(d.Logger)

	momentumJob := jobs.NewMomentumRefreshJob(d.Refresher, d.Logger)
	if err := sched.AddJob(momentumJob); err != nil {
		d.Close()
		return nil, nil, fmt.Errorf("add momentum job: %w", err)
	}

	return sched, d, nil
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Nivesh Scheduler ===")

	sched, d, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer d.Close()

	sched.Start()

	fmt.Println("\nScheduler started. Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	sched, d, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer d.Close()

	fmt.Println("Registered jobs:")
	for name, stats := range sched.GetJobStats() {
		fmt.Printf("  %-20s schedule=%s\n", name, stats.Schedule)
	}

	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, d, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer d.Close()

	fmt.Printf("Running job %s...\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return err
	}

	// RunJob is asynchronous; poll history until the run lands
	for i := 0; i < 600; i++ {
		time.Sleep(1 * time.Second)

		results, err := sched.GetJobHistory(jobName)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			continue
		}

		result := results[len(results)-1]
		if result.Success {
			fmt.Printf("Job %s completed in %s\n", jobName, result.Duration)
		} else {
			fmt.Printf("Job %s failed: %s\n", jobName, result.Error)
		}
		return nil
	}

	return fmt.Errorf("job %s did not finish within 10 minutes", jobName)
}
