package daemons

import (
	"github.com/jasonlvhit/gocron"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/exchange"
	"github.com/monetra/monetra/jobs"
	"github.com/monetra/monetra/jobs/cron"
)

// CronJob runs the daily jobs on a wall-clock schedule, anchored to the
// configured hour rather than to process start or request traffic.
type CronJob struct {
	scheduler *gocron.Scheduler
	Jobs      []jobs.Job
}

func NewCronJob(rates *exchange.Service) *CronJob {
	return &CronJob{
		scheduler: gocron.NewScheduler(),
		Jobs: []jobs.Job{
			&cron.ExchangeRatesJob{Rates: rates},
		},
	}
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		if err := c.scheduler.Every(1).Day().At(config.App.Exchange.RefreshAt).Do(job.Process); err != nil {
			config.Logger.Errorf("cron: cannot schedule job: %v", err)
		}
	}

	<-c.scheduler.Start()
}

func (c *CronJob) Stop() {
	c.scheduler.Clear()
}
