package jobshandler

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"jobs-board-backend/db"
	xlsexport "jobs-board-backend/lib/export/xls"
	joblistingsclient "jobs-board-backend/lib/external-services/joblistings/client"
	favoritejobstore "jobs-board-backend/lib/favorite-job/store"
	initchecker "jobs-board-backend/lib/utils/init-checker"
	jobsapimodels "jobs-board-backend/models/api/jobs"
	joblistingsapimodels "jobs-board-backend/models/api/joblistings"
)

type Provider interface {
	List(ctx context.Context, userID int, filter jobsapimodels.JobFilter) (resp jobsapimodels.JobListResponse, hMsg string, err error)
	Get(ctx context.Context, userID, id int) (item jobsapimodels.Job, hMsg string, err error)
	ToggleFavorite(ctx context.Context, userID, id int) (favorited bool, err error)
	Favorites(ctx context.Context, userID int) ([]jobsapimodels.Job, error)
	ExportFavorites(ctx context.Context, userID int) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(maxParallel int) {
	instance := impl{
		client:        joblistingsclient.Instance,
		favoriteStore: favoritejobstore.NewInstance(db.DB),
		xlsExport:     xlsexport.Instance,
		maxParallel:   maxParallel,
	}
	initchecker.CheckInit(
		"client", instance.client,
		"favoriteStore", instance.favoriteStore,
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	client        joblistingsclient.Provider
	favoriteStore favoritejobstore.Provider
	xlsExport     xlsexport.Provider
	maxParallel   int
}

func (i impl) getLogger(userID int) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) List(ctx context.Context, userID int, filter jobsapimodels.JobFilter) (resp jobsapimodels.JobListResponse, hMsg string, err error) {
	if hMsg = filter.Validate(); hMsg != "" {
		return jobsapimodels.JobListResponse{}, hMsg, nil
	}
	page := filter.GetPage()
	if filter.Search != "" {
		resp, err = i.search(ctx, filter.Search, page)
	} else {
		resp, err = i.listPage(ctx, page)
	}
	if err != nil {
		return jobsapimodels.JobListResponse{}, "", err
	}
	if err = i.markFavorites(userID, resp.Data); err != nil {
		return jobsapimodels.JobListResponse{}, "", err
	}
	return resp, "", nil
}

// search has no upstream pagination, the last page is unknown and reported as 0.
// Order of the recommended ids is kept as is.
func (i impl) search(ctx context.Context, search string, page int) (jobsapimodels.JobListResponse, error) {
	jobIDs, err := i.client.Recommendations(ctx, search)
	if err != nil {
		return jobsapimodels.JobListResponse{}, err
	}
	apiJobs, err := i.hydrate(ctx, jobIDs)
	if err != nil {
		return jobsapimodels.JobListResponse{}, err
	}
	result := jobsapimodels.JobListResponse{
		Pagination: jobsapimodels.Pagination{
			CurrentPage: page,
			FirstPage:   0,
			LastPage:    0,
		},
		Data: make([]jobsapimodels.Job, 0, len(apiJobs)),
	}
	for _, apiJob := range apiJobs {
		result.Data = append(result.Data, jobsapimodels.JobConvert(apiJob))
	}
	return result, nil
}

func (i impl) listPage(ctx context.Context, page int) (jobsapimodels.JobListResponse, error) {
	apiResp, err := i.client.ListJobs(ctx, page)
	if err != nil {
		return jobsapimodels.JobListResponse{}, err
	}
	result := jobsapimodels.JobListResponse{
		Pagination: jobsapimodels.PaginationConvert(apiResp.Pagination),
		Data:       make([]jobsapimodels.Job, 0, len(apiResp.Data)),
	}
	for _, apiJob := range apiResp.Data {
		result.Data = append(result.Data, jobsapimodels.JobConvert(apiJob))
	}
	return result, nil
}

// hydrate fetches every job by id, result[k] belongs to jobIDs[k]. Fails on the first error.
func (i impl) hydrate(ctx context.Context, jobIDs []int) ([]joblistingsapimodels.Job, error) {
	result := make([]joblistingsapimodels.Job, len(jobIDs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelLimit())
	for idx, jobID := range jobIDs {
		idx, jobID := idx, jobID
		g.Go(func() error {
			job, err := i.client.GetJob(gCtx, jobID)
			if err != nil {
				return errors.Wrapf(err, "error fetching job %v", jobID)
			}
			result[idx] = job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (i impl) parallelLimit() int {
	if i.maxParallel <= 0 {
		return -1
	}
	return i.maxParallel
}

func (i impl) markFavorites(userID int, list []jobsapimodels.Job) error {
	if len(list) == 0 {
		return nil
	}
	jobIDs := make([]int, 0, len(list))
	for _, job := range list {
		jobIDs = append(jobIDs, job.ID)
	}
	favoriteIDs, err := i.favoriteStore.ListJobIDs(userID, jobIDs)
	if err != nil {
		return err
	}
	favoriteSet := make(map[int]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favoriteSet[id] = struct{}{}
	}
	for idx := range list {
		_, list[idx].IsFavorite = favoriteSet[list[idx].ID]
	}
	return nil
}

func (i impl) Get(ctx context.Context, userID, id int) (item jobsapimodels.Job, hMsg string, err error) {
	apiJob, err := i.client.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, joblistingsclient.ErrJobNotFound) {
			return jobsapimodels.Job{}, "Job not found", nil
		}
		return jobsapimodels.Job{}, "", err
	}
	item = jobsapimodels.JobConvert(apiJob)
	item.IsFavorite, err = i.favoriteStore.Exists(userID, item.ID)
	if err != nil {
		return jobsapimodels.Job{}, "", err
	}
	return item, "", nil
}

// ToggleFavorite does not check that the job exists upstream
func (i impl) ToggleFavorite(ctx context.Context, userID, id int) (favorited bool, err error) {
	favorited, err = i.favoriteStore.Toggle(userID, id)
	if err != nil {
		return false, err
	}
	i.getLogger(userID).
		WithField("job_id", id).
		WithField("favorite", favorited).
		Debug("favorite job toggled")
	return favorited, nil
}

func (i impl) Favorites(ctx context.Context, userID int) ([]jobsapimodels.Job, error) {
	recs, err := i.favoriteStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	logger := i.getLogger(userID)
	found := make([]*joblistingsapimodels.Job, len(recs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelLimit())
	for idx, rec := range recs {
		idx, jobID := idx, rec.JobID
		g.Go(func() error {
			job, err := i.client.GetJob(gCtx, jobID)
			if err != nil {
				if errors.Is(err, joblistingsclient.ErrJobNotFound) {
					logger.WithField("job_id", jobID).Warn("favorite job no longer exists upstream, skipped")
					return nil
				}
				return errors.Wrapf(err, "error fetching job %v", jobID)
			}
			found[idx] = &job
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	result := make([]jobsapimodels.Job, 0, len(found))
	for _, job := range found {
		if job == nil {
			continue
		}
		item := jobsapimodels.JobConvert(*job)
		item.IsFavorite = true
		result = append(result, item)
	}
	return result, nil
}

func (i impl) ExportFavorites(ctx context.Context, userID int) (*bytes.Buffer, error) {
	list, err := i.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportFavoriteJobs(list)
}
