package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"remiks.GO/config"
)

// StartCron schedules every registered job plus the config-declared ones
// and starts the scheduler. A bad cron spec aborts startup.
func StartCron() (*cron.Cron, error) {
	c := cron.New()

	jobs := Jobs()
	for _, name := range Names() {
		j := jobs[name]
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			return nil, fmt.Errorf("schedule job %s (%q): %w", name, j.Schedule, err)
		}
		log.Printf("cron: scheduled %s (%s)", name, j.Schedule)
	}

	for name, cronJob := range config.CronJobs {
		run := cronJob.Job
		if _, err := c.AddFunc(cronJob.Schedule, func() { run() }); err != nil {
			return nil, fmt.Errorf("schedule job %s (%q): %w", name, cronJob.Schedule, err)
		}
		log.Printf("cron: scheduled %s (%s)", name, cronJob.Schedule)
	}

	c.Start()
	return c, nil
}
