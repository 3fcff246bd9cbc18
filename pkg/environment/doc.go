// Package environment carries the deployment environment (development,
// staging, production) of a run through context.Context and into structured
// logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "rowcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "started") // env=development
//
// Missing values result in the zero value ("").
package environment
