package main

import (
	"sync"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/seeder/seeds"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/metal/kernel"
	"github.com/Matias-sh/mi-portafolio/pkg/cli"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
}

func main() {
	cli.ClearScreen()

	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.Migrate(); err != nil {
		panic(err)
	}

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	cli.Successln("db truncated successfully ...")

	if err := run(seeder); err != nil {
		cli.Errorln(err.Error())

		return
	}

	cli.Magentaln("db seeded as expected ....")
}

func run(seeder *seeds.Seeder) error {
	categoriesChan := make(chan []database.Category, 1)
	tagsChan := make(chan []database.Tag, 1)
	errs := make(chan error, 9)

	// Categories and tags are needed by the write-ups, so they are awaited
	// through channels while the rest runs alongside.
	go func() {
		defer close(categoriesChan)

		cli.Warningln("Seeding categories ...")
		categories, err := seeder.SeedCategories()
		errs <- err
		categoriesChan <- categories
	}()

	go func() {
		defer close(tagsChan)

		cli.Magentaln("Seeding tags ...")
		tags, err := seeder.SeedTags()
		errs <- err
		tagsChan <- tags
	}()

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()

		cli.Blueln("Seeding profile ...")
		_, err := seeder.SeedProfile()
		errs <- err
	}()

	go func() {
		defer wg.Done()

		cli.Cyanln("Seeding skills ...")
		_, err := seeder.SeedSkills()
		errs <- err
	}()

	go func() {
		defer wg.Done()

		cli.Grayln("Seeding experiences ...")
		_, err := seeder.SeedExperiences()
		errs <- err
	}()

	go func() {
		defer wg.Done()

		cli.Grayln("Seeding projects ...")
		_, err := seeder.SeedProjects()
		errs <- err
	}()

	go func() {
		defer wg.Done()

		cli.Warningln("Seeding certifications ...")
		_, err := seeder.SeedCertifications()
		errs <- err
	}()

	go func() {
		defer wg.Done()

		cli.Cyanln("Seeding tools ...")
		_, err := seeder.SeedTools()
		errs <- err
	}()

	categories := <-categoriesChan
	tags := <-tagsChan

	if len(categories) > 0 {
		cli.Blueln("Seeding writeups ...")
		_, err := seeder.SeedWriteUps(categories, tags)
		errs <- err
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
