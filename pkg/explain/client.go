// Package explain 调用 OpenAI 接口生成当前天空状态的解说文字
//
// 对调用方的契约是"总是返回一段文字"：缺少 API Key、网络失败、
// 响应为空等所有内部错误都映射为固定的离线说明文字，不向上抛错。
// 每次用户点击只发一次请求，不做自动重试。
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gonewx/rayleigh/internal/logger"
	"github.com/gonewx/rayleigh/pkg/sky"
)

// OfflineFallback 离线模式的固定回退文字
const OfflineFallback = "Offline mode: at low sun angles sunlight crosses a longer slice of atmosphere, " +
	"so more blue light is scattered out of the beam before it reaches you and the sky turns red. " +
	"Set OPENAI_API_KEY to get a generated explanation."

// requestFailedFallback 请求失败时的回退文字
const requestFailedFallback = "The explanation service is unreachable right now. " +
	"Rule of thumb: path length 1 means overhead sun and a blue sky; the larger the factor, the redder the horizon."

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You are a friendly physics teacher. In at most three sentences, explain what the sky " +
	"looks like for the given sun state and why, using Rayleigh scattering. No formulas, no greetings."

// Config 解说客户端配置
type Config struct {
	APIKey      string  // 为空时尝试 OPENAI_API_KEY 环境变量
	Model       string  // 模型名称
	Endpoint    string  // 为空时使用官方 chat/completions 端点
	MaxTokens   int     // 响应长度上限，0 表示不限制
	Temperature float64 // 采样温度，0 表示不设置
}

// Client 解说客户端
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient 创建解说客户端
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, httpClient: http.DefaultClient}
}

// chat/completions 请求与响应的最小结构
type chatRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_completion_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Explain 返回当前太阳状态的解说文字
//
// 类型层面总是成功：任何内部错误都转换为回退文字。
func (c *Client) Explain(ctx context.Context, angle, pathLength float64) string {
	key := strings.TrimSpace(c.cfg.APIKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	if key == "" {
		logger.Sugar.Infow("explanation requested without API key, using offline fallback")
		return OfflineFallback
	}

	result, err := c.generate(ctx, key, BuildPrompt(angle, pathLength))
	if err != nil {
		logger.Sugar.Warnw("explanation request failed", "error", err)
		return requestFailedFallback
	}
	return result
}

// BuildPrompt 构造发给模型的用户消息
func BuildPrompt(angle, pathLength float64) string {
	return fmt.Sprintf(
		"Sun elevation slider: %.1f degrees (0 = sunrise, 90 = zenith, 180 = sunset). "+
			"Phase: %s. Atmospheric path length factor: %.2f times the vertical path.",
		angle, sky.PhaseForAngle(angle), pathLength)
}

// generate 发送一次 chat/completions 请求
func (c *Client) generate(ctx context.Context, key, userContent string) (string, error) {
	endpoint := c.cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	model := c.cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	reqBody := chatRequest{
		Model:       model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call explanation endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("explanation endpoint HTTP %s: %s", resp.Status, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("explanation endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response had no choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("response content was empty")
	}
	return content, nil
}
