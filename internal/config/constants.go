// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "curriculum_keep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultMailerProvider = "log"
)

// ドメイン上の固定値
const (
	// クォーターは年度の4分割なので最大4件
	MaxQuarters = 4

	// 却下コメントの最低文字数 (rune単位)
	MinRejectCommentLength = 10
)
