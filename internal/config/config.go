package config

type Config struct {
	Security  SecurityConf  `json:"security"`
	Bootstrap BootstrapConf `json:"bootstrap"`
	Upload    UploadConf    `json:"upload"`
	Web       WebConf       `json:"web"`
}

type SecurityConf struct {
	JwtSecret string `json:"jwt_secret"` // 비어 있으면 기동 시 임의 값 생성, 재기동하면 기존 세션은 무효화된다
}

type BootstrapConf struct {
	AdminEmail    string `json:"admin_email"` // 관리자 계정이 하나도 없을 때 생성할 초기 계정
	AdminPassword string `json:"admin_password"`
	AdminName     string `json:"admin_name"`
}

type UploadConf struct {
	Dir     string `json:"dir"`      // 업로드 파일 저장 경로
	BaseURL string `json:"base_url"` // 업로드 파일 공개 URL prefix
}

type WebConf struct {
	Dir string `json:"dir"` // 정적 프런트엔드 빌드 경로, 비어 있으면 서빙하지 않음
}
