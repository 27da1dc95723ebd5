package query

const popularArticlesSQL = `SELECT articles.title, subq.views
FROM articles
LEFT JOIN (
	SELECT path, count(ip) AS views
	FROM log
	WHERE status = '200 OK'
	GROUP BY path
) AS subq ON subq.path = CONCAT('/article/', articles.slug)
ORDER BY subq.views DESC LIMIT 3;`

const popularAuthorsSQL = `SELECT subq2.name, count(subq2.path) AS views
FROM (
	SELECT log.path, log.ip, subq1.slug, subq1.title, subq1.name
	FROM log
	RIGHT JOIN (
		SELECT articles.slug, articles.title, authors.name
		FROM articles JOIN authors ON articles.author = authors.id
	) AS subq1 ON log.path = CONCAT('/article/', subq1.slug)
	WHERE status = '200 OK'
) AS subq2
GROUP BY subq2.name ORDER BY views DESC;`

// Порог 1% и округление до двух знаков зафиксированы в самом запросе.
const errorDaysSQL = `SELECT subq.day, ROUND((100.0 * subq.err / subq.total), 2) AS error
FROM (
	SELECT date_trunc('day', time) AS day,
		count(id) AS total,
		sum(CASE WHEN status != '200 OK' THEN 1 ELSE 0 END) AS err
	FROM log
	GROUP BY day
) AS subq
WHERE ROUND((100.0 * subq.err / subq.total), 2) > 1;`

// Catalog returns the fixed, ordered list of report sections.
// Order defines the order of sections in the report.
func Catalog() []Query {
	return []Query{
		{
			Question: "1. What are the most popular three articles of all time?",
			SQL:      popularArticlesSQL,
			Kind:     KindRankCount,
		},
		{
			Question: "2. Who are the most popular article authors of all time?",
			SQL:      popularAuthorsSQL,
			Kind:     KindRankCount,
		},
		{
			Question: "3. On which days did more than 1% of requests lead to errors?",
			SQL:      errorDaysSQL,
			Kind:     KindDateRatio,
		},
	}
}
