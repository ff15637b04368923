package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	joblistingsapimodels "jobs-board-backend/models/api/joblistings"
)

var ErrJobNotFound = errors.New("job not found")

type Provider interface {
	// ListJobs GET /jobs?page=, page is zero based
	ListJobs(ctx context.Context, page int) (joblistingsapimodels.JobListResponse, error)

	// GetJob GET /jobs/{id}
	GetJob(ctx context.Context, id int) (joblistingsapimodels.Job, error)

	// Recommendations POST /jobs/recommendations, returns ids only
	Recommendations(ctx context.Context, jobTitle string) ([]int, error)
}

var Instance Provider

type impl struct {
	host   string
	client *http.Client
}

func NewProvider(host string, timeout time.Duration) {
	Instance = NewInstance(host, &http.Client{Timeout: timeout})
}

func NewInstance(host string, httpClient *http.Client) Provider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &impl{
		host:   strings.TrimSuffix(host, "/"),
		client: httpClient,
	}
}

const (
	jobsPath            string = "/jobs?page=%v"
	jobPath             string = "/jobs/%v"
	recommendationsPath string = "/jobs/recommendations"
)

func (i impl) ListJobs(ctx context.Context, page int) (joblistingsapimodels.JobListResponse, error) {
	uri := i.host + fmt.Sprintf(jobsPath, page)
	logger := log.
		WithField("page", page).
		WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return joblistingsapimodels.JobListResponse{}, errors.Wrap(err, "error building request")
	}
	r.Header.Add("Accept", "application/json")
	resp := joblistingsapimodels.JobListResponse{}
	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		return joblistingsapimodels.JobListResponse{}, errors.Wrap(err, "error fetching jobs")
	}
	return resp, nil
}

func (i impl) GetJob(ctx context.Context, id int) (joblistingsapimodels.Job, error) {
	uri := i.host + fmt.Sprintf(jobPath, id)
	logger := log.
		WithField("job_id", id).
		WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return joblistingsapimodels.Job{}, errors.Wrap(err, "error building request")
	}
	r.Header.Add("Accept", "application/json")
	resp := joblistingsapimodels.Job{}
	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return joblistingsapimodels.Job{}, err
		}
		return joblistingsapimodels.Job{}, errors.Wrap(err, "error fetching job details")
	}
	return resp, nil
}

func (i impl) Recommendations(ctx context.Context, jobTitle string) ([]int, error) {
	uri := i.host + recommendationsPath
	body, err := json.Marshal(joblistingsapimodels.RecommendationRequest{JobTitle: jobTitle})
	if err != nil {
		return nil, errors.Wrap(err, "error serializing request")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("request_body", string(body))

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "error building request")
	}
	r.Header.Add("Content-Type", "application/json")
	resp := joblistingsapimodels.RecommendationResponse{}
	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching job recommendations")
	}
	if resp.JobIDs == nil {
		return []int{}, nil
	}
	return resp.JobIDs, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("User-Agent", "JobsBoard/1.0")
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("error sending request to job listings api")
		return errors.Wrap(err, "request failed")
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "error reading response")
	}
	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		if resp != nil {
			if err = json.Unmarshal(responseBody, resp); err != nil {
				logger.WithField("response_body", string(responseBody)).WithError(err).Error("error deserializing response")
				return errors.Wrap(err, "error deserializing response")
			}
		}
		return nil
	}

	logger = logger.
		WithField("status", response.StatusCode).
		WithField("response_body", string(responseBody))
	if response.StatusCode == http.StatusNotFound {
		logger.Warn("job listings api returned not found")
		return ErrJobNotFound
	}
	errorResp := joblistingsapimodels.ErrorData{}
	if err = json.Unmarshal(responseBody, &errorResp); err == nil && errorResp.Message != "" {
		logger = logger.WithField("upstream_message", errorResp.Message)
	}
	logger.Error("job listings api returned an error")
	return errors.Errorf("unexpected status %v", response.StatusCode)
}
