package docs

// @title Comment Monitor API
// @version 1.0
// @description Keyword monitoring of social profiles with pending comment drafts.
// @description Every /api route needs "Authorization: Bearer <token>".

// @contact.name API Support
// @contact.email support@comment-monitor.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
