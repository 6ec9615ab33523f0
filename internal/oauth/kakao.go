package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"golang.org/x/oauth2"
)

const (
	kakaoAuthURL     = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
)

type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Endpoint overrides, empty means production Kakao hosts
	TokenURL    string
	UserInfoURL string
}

type Kakao struct {
	cfg         *oauth2.Config
	userInfoURL string
}

type kakaoUser struct {
	ID      int64 `json:"id"`
	Account struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func NewKakao(c KakaoConfig) *Kakao {
	tokenURL := c.TokenURL
	if tokenURL == "" {
		tokenURL = kakaoTokenURL
	}
	userInfoURL := c.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = kakaoUserInfoURL
	}
	return &Kakao{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   kakaoAuthURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: userInfoURL,
	}
}

func (k *Kakao) Name() string {
	return "kakao"
}

func (k *Kakao) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	token, err := k.cfg.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: %s", errorvalues.ErrProviderExchange, retrieveErr.Error())
		}
		return nil, errors.New("kakao token exchange error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.userInfoURL, nil)
	if err != nil {
		return nil, errors.New("building user info request error: " + err.Error())
	}
	resp, err := k.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.New("kakao user info request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: user info responded %d", errorvalues.ErrProviderExchange, resp.StatusCode)
	}
	var user kakaoUser
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.New("decoding kakao user info error: " + err.Error())
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("%w: user info without id", errorvalues.ErrProviderExchange)
	}
	return &UserInfo{
		ProviderUserID: strconv.FormatInt(user.ID, 10),
		Email:          user.Account.Email,
		Nickname:       user.Account.Profile.Nickname,
	}, nil
}
