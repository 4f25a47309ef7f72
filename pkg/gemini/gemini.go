package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"noteflow/pkg/config"
	"noteflow/pkg/log"
	"noteflow/pkg/models"
)

const apiGenerateContentURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

const promptTemplate = `다음 텍스트를 분석하여 JSON 형식으로 응답해주세요.

텍스트:
"""
%s
"""

요청사항:
1. 이 텍스트의 적절한 카테고리를 다음 중 하나로 선택:
   - 코드: 프로그래밍 코드, 스니펫, 기술적 내용
   - 링크: URL, 웹사이트 주소
   - 할일: 작업, 태스크, 해야할 일
   - 아이디어: 새로운 생각, 제안, 기획
   - 참고자료: 문서, 가이드, 학습 자료
   - 기타: 위 카테고리에 해당하지 않는 경우

2. 이 텍스트와 관련된 3-5개의 태그를 생성 (영문 또는 한글, # 없이)

3. 이 텍스트의 내용을 요약하는 20자 이내의 짧은 제목 생성

4. 텍스트가 200자 이상인 경우 100자 이내로 요약 (200자 미만이면 요약 생략)

JSON 형식으로만 응답하세요:
{
  "category": "카테고리",
  "tags": ["태그1", "태그2", "태그3"],
  "title": "제목",
  "summary": "요약 또는 null"
}`

// Client calls the Gemini text-classification capability. It holds no
// connection state; one request is issued per Classify call.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		baseURL:    apiGenerateContentURL,
	}
}

// HasValidCredential reports whether an API key is configured. Callers
// check this before submitting; Classify itself does not enforce it and
// surfaces the downstream failure as a degraded result instead.
func (c *Client) HasValidCredential() bool {
	key := c.cfg.Gemini.APIKey
	return len(key) > 0 && key != "your_api_key_here"
}

// Classify analyzes free text into category, tags, title and summary.
// Empty input is the only hard error; every service, transport or parse
// failure degrades to a fallback result carrying the failure description,
// so callers always get a usable AnalysisResult.
func (c *Client) Classify(text string) (*models.AnalysisResult, error) {
	logger := log.Logger()

	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyContent
	}

	raw, err := c.generateContent(fmt.Sprintf(promptTemplate, text))
	if err != nil {
		logger.Errorf("classification failed, %s", err)
		return models.FallbackResult(text, err), nil
	}

	parsed, err := parseAnalysis(raw)
	if err != nil {
		logger.Errorf("error parsing classification response, %s", err)
		return models.FallbackResult(text, err), nil
	}

	return parsed, nil
}

func (c *Client) generateContent(prompt string) (string, error) {
	logger := log.Logger()

	u := fmt.Sprintf(c.baseURL, c.cfg.Gemini.Model, c.cfg.Gemini.APIKey)
	logger.Debugf("gemini request: model %s, prompt %d chars", c.cfg.Gemini.Model, len(prompt))

	request := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("error encoding gemini request, %s", err)
	}

	resp, err := c.httpClient.Post(u, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error calling gemini, %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error calling gemini, %s", resp.Status)
	}

	var response struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("error decoding gemini response, %s", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

func parseAnalysis(raw string) (*models.AnalysisResult, error) {
	var analysis struct {
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
		Title    string   `json:"title"`
		Summary  string   `json:"summary"`
	}

	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("error parsing analysis JSON, %s", err)
	}

	return &models.AnalysisResult{
		Category:     models.CategoryFromLabel(analysis.Category),
		CategoryName: analysis.Category,
		Tags:         models.NormalizeTags(analysis.Tags),
		Title:        analysis.Title,
		Summary:      analysis.Summary,
	}, nil
}

// stripCodeFences removes markdown code-fence wrapping the service tends
// to put around its JSON answer.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
