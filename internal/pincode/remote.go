package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// 外部照会段。base URLを順に試し、最初にまともな応答を返した
// エンドポイントを採用する。1試行ごとにタイムアウトを張る。
type remoteStrategy struct {
	endpoints []string
	timeout   time.Duration
	client    *http.Client
}

func NewRemoteStrategy(endpoints []string, timeout time.Duration) Strategy {
	return &remoteStrategy{
		endpoints: append([]string(nil), endpoints...),
		timeout:   timeout,
		client:    &http.Client{},
	}
}

func (s *remoteStrategy) Name() string { return "remote" }

// 応答形式: [{"Status":"Success","PostOffice":[{"State":...,"District":...}]}]
// 配列で包まずに返す実装もあるので両方受ける。
type postalResult struct {
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

type postOffice struct {
	Name     string `json:"Name"`
	District string `json:"District"`
	State    string `json:"State"`
}

func (s *remoteStrategy) Resolve(ctx context.Context, pin string) (Location, error) {
	var lastErr error

	for _, base := range s.endpoints {
		loc, err := s.lookup(ctx, base, pin)
		if err == nil {
			return loc, nil
		}
		lastErr = err

		// 呼び出し元自体のキャンセルなら次のエンドポイントは試さない
		if ctx.Err() != nil {
			return Location{}, ctx.Err()
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no endpoints configured")
	}
	return Location{}, lastErr
}

func (s *remoteStrategy) lookup(ctx context.Context, base string, pin string) (Location, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url := strings.TrimRight(base, "/") + "/pincode/" + pin
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("postal lookup status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Location{}, err
	}

	res, err := decodePostalPayload(body)
	if err != nil {
		return Location{}, err
	}

	if !strings.EqualFold(res.Status, "Success") || len(res.PostOffice) == 0 {
		return Location{}, fmt.Errorf("postal lookup returned %q", res.Status)
	}

	po := res.PostOffice[0]
	if po.State == "" {
		return Location{}, errors.New("postal lookup missing state")
	}

	return Location{State: po.State, District: po.District}, nil
}

func decodePostalPayload(body []byte) (postalResult, error) {
	var wrapped []postalResult
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if len(wrapped) == 0 {
			return postalResult{}, errors.New("empty postal payload")
		}
		return wrapped[0], nil
	}

	var single postalResult
	if err := json.Unmarshal(body, &single); err != nil {
		return postalResult{}, fmt.Errorf("malformed postal payload: %w", err)
	}
	if single.Status == "" {
		return postalResult{}, errors.New("postal payload without status")
	}
	return single, nil
}
