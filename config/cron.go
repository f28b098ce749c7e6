package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs is the static job table. The sync jobs register themselves
// through the cron registry (see cron/jobs); add ad-hoc jobs here.
var CronJobs = map[string]CronJob{}
