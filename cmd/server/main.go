package main

import (
	"log"

	"github.com/urbanwheels/dashboard-go/internal/api"
	"github.com/urbanwheels/dashboard-go/internal/config"
	"github.com/urbanwheels/dashboard-go/internal/database"
	"github.com/urbanwheels/dashboard-go/internal/dataset"
	"github.com/urbanwheels/dashboard-go/internal/handler"
	"github.com/urbanwheels/dashboard-go/internal/ingest"
	"github.com/urbanwheels/dashboard-go/internal/metrics"
	"github.com/urbanwheels/dashboard-go/internal/repository"
	"github.com/urbanwheels/dashboard-go/internal/service"
)

func main() {
	cfg := config.Load()

	// a load failure leaves nothing to serve
	records, err := ingest.LoadCSV(cfg.CSVPath)
	if err != nil {
		log.Fatal("Failed to load dataset: ", err)
	}
	log.Printf("Dataset loaded: %d records from %s", len(records), cfg.CSVPath)

	store := dataset.NewStore(dataset.NewSnapshot(records))

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	recordRepo := repository.NewRecordRepository(db)
	if err := recordRepo.ReplaceAll(records); err != nil {
		log.Fatal("Failed to mirror dataset: ", err)
	}

	recorder := metrics.NewRecorder()
	recorder.SetDatasetSize(len(records))

	if cfg.WatchCSV {
		startWatcher(cfg.CSVPath, store, recordRepo, recorder)
	}

	handlers := api.Handlers{
		Records:   handler.NewRecordHandler(service.NewRecordService(store, recordRepo)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(store)),
		Temporal:  handler.NewTemporalHandler(service.NewTemporalService(store)),
		Weather:   handler.NewWeatherHandler(service.NewWeatherService(store)),
		Behavior:  handler.NewBehaviorHandler(service.NewBehaviorService(store)),
		Metrics:   recorder,
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// startWatcher reloads the snapshot and the sqlite mirror whenever the
// dataset file is rewritten. A failed reload keeps the previous
// snapshot in place.
func startWatcher(path string, store *dataset.Store, repo *repository.RecordRepository, recorder *metrics.Recorder) {
	watcher, err := ingest.NewWatcher(path)
	if err != nil {
		log.Printf("Dataset watcher disabled: %v", err)
		return
	}

	go func() {
		err := watcher.Watch(func() {
			records, err := ingest.LoadCSV(path)
			if err != nil {
				log.Printf("Dataset reload failed, keeping previous snapshot: %v", err)
				return
			}
			store.Replace(dataset.NewSnapshot(records))
			if err := repo.ReplaceAll(records); err != nil {
				log.Printf("Dataset mirror refresh failed: %v", err)
			}
			recorder.SetDatasetSize(len(records))
			recorder.IncReload()
			log.Printf("Dataset reloaded: %d records", len(records))
		})
		if err != nil {
			log.Printf("Dataset watcher stopped: %v", err)
		}
	}()
}
