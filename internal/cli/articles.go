package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/router"
)

func (a *App) Articles(ctx context.Context) error {
	if !a.navigate(ctx, router.RouteArticles) {
		return nil
	}

	page, err := a.articles.FetchArticles(ctx, models.ArticleQuery{
		Status:     models.ArticleStatusPublished,
		PageParams: models.PageParams{Size: 20},
	})
	if err != nil {
		return err
	}

	a.printArticleList(page.Content)
	fmt.Fprintf(a.out, "%d of %d articles\n", len(a.articles.Articles()), page.TotalElements)
	return nil
}

func (a *App) Article(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: article <id>")
		return nil
	}
	if !a.navigate(ctx, router.RouteArticleDetail) {
		return nil
	}

	art, err := a.articles.FetchArticle(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\nby %s on %s\n\n%s\n", art.Title, art.AuthorName, art.CreatedAt, art.Content)

	comments, err := a.api.ArticleComments(ctx, id, models.PageParams{Size: 20})
	if err != nil {
		return err
	}
	if len(comments.Content) > 0 {
		fmt.Fprintf(a.out, "\nComments (%d):\n", comments.TotalElements)
		for _, c := range comments.Content {
			fmt.Fprintf(a.out, "  %s: %s\n", c.AuthorName, c.Content)
		}
	}
	return nil
}

func (a *App) Search(ctx context.Context, keyword string) error {
	if keyword == "" {
		fmt.Fprintln(a.out, "Usage: search <keyword>")
		return nil
	}
	if !a.navigate(ctx, router.RouteSearch) {
		return nil
	}

	page, err := a.articles.SearchArticles(ctx, keyword, models.PageParams{Size: 20})
	if err != nil {
		return err
	}

	a.printArticleList(page.Content)
	fmt.Fprintf(a.out, "%d results\n", page.TotalElements)
	return nil
}

func (a *App) Write(ctx context.Context) error {
	if !a.navigate(ctx, router.RouteWrite) {
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	form := articleForm{Title: title, Content: content}
	if err := a.forms.Validate(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	art, err := a.articles.CreateArticle(ctx, models.CreateArticleRequest{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Draft saved with id %s. Use 'publish %s' to publish.\n", art.ID, art.ID)
	return nil
}

func (a *App) Publish(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: publish <id>")
		return nil
	}
	if !a.navigate(ctx, router.RouteEdit) {
		return nil
	}

	if err := a.articles.PublishArticle(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Published.")
	return nil
}

func (a *App) Bookmarks(ctx context.Context) error {
	if !a.navigate(ctx, router.RouteBookmarks) {
		return nil
	}

	page, err := a.api.BookmarkedArticles(ctx, models.PageParams{Size: 20})
	if err != nil {
		return err
	}

	a.printArticleList(page.Content)
	fmt.Fprintf(a.out, "%d bookmarks\n", page.TotalElements)
	return nil
}

func (a *App) printArticleList(articles []models.Article) {
	for _, art := range articles {
		fmt.Fprintf(a.out, "%s  %-40s  %s  (%d likes)\n", art.ID, art.Title, art.AuthorName, art.Statistics.LikeCount)
	}
}
