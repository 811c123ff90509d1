package content

// Post is a static study article
type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ReadTime string `json:"readTime"`
	Category string `json:"category"`
	Body     string `json:"content,omitempty"`
}

var posts = []Post{
	{
		Slug:     "how-to-prepare-canadian-citizenship-test",
		Title:    "How to Prepare for the Canadian Citizenship Test: A Complete Guide",
		Excerpt:  "Learn the best strategies to prepare for your Canadian citizenship test, including study tips, practice methods, and what to expect on test day.",
		ReadTime: "8 min read",
		Category: "Study Guide",
		Body: `<h2>Understanding the Canadian Citizenship Test</h2>
<p>The test has 20 multiple-choice or true/false questions. You have 45 minutes and need at least 15 correct answers (75%) to pass. Every question comes from the official study guide "Discover Canada: The Rights and Responsibilities of Citizenship."</p>
<h3>Effective Study Strategies</h3>
<p>Start two to three months before your test date. Read the study guide first, then take practice tests to find weak areas. Keep study sessions to 20-30 minutes and review your notes by topic.</p>
<h3>What to Expect on Test Day</h3>
<p>Arrive early with proper identification. Results are usually given immediately. If you do not pass you can retake the test after 4-8 weeks.</p>`,
	},
	{
		Slug:     "top-10-common-citizenship-test-questions",
		Title:    "Top 10 Most Common Canadian Citizenship Test Questions",
		Excerpt:  "Discover the most frequently asked questions on the Canadian citizenship test and learn how to answer them correctly.",
		ReadTime: "6 min read",
		Category: "Test Questions",
		Body: `<h2>Most Frequently Asked Citizenship Test Questions</h2>
<ol>
<li>The three main groups of Aboriginal peoples: First Nations, Inuit and Métis.</li>
<li>The capital of Canada: Ottawa.</li>
<li>The three levels of government: federal, provincial or territorial, and municipal.</li>
<li>The Charter of Rights and Freedoms guarantees fundamental rights to all Canadians.</li>
<li>The three branches of government: executive, legislative and judicial.</li>
<li>July 1, 1867 marks Confederation.</li>
<li>The official languages: English and French.</li>
<li>The Governor General represents the Sovereign in Canada.</li>
<li>The three territories: Yukon, Northwest Territories and Nunavut.</li>
<li>The maple leaf is the best known symbol of Canadian identity.</li>
</ol>
<p>Learn the context behind each answer, since the same fact can be asked in different ways.</p>`,
	},
	{
		Slug:     "canadian-history-citizenship-test",
		Title:    "Understanding Canadian History: Key Events for the Citizenship Test",
		Excerpt:  "Master the essential Canadian historical events and figures that are commonly tested on the citizenship exam.",
		ReadTime: "10 min read",
		Category: "History",
		Body: `<h2>Essential Canadian History for the Citizenship Test</h2>
<p>Before European contact Canada was home to First Nations, Inuit and Métis peoples. The Seven Years' War ended French rule in 1763.</p>
<p>On July 1, 1867 the British North America Act created the Dominion of Canada, uniting Ontario, Quebec, Nova Scotia and New Brunswick. The Canadian Pacific Railway was completed in 1885.</p>
<p>Canadians fought at Vimy Ridge in the First World War and on Juno Beach in the Second. Women won the federal vote in 1918, and the Constitution was patriated with the Charter in 1982.</p>`,
	},
	{
		Slug:     "canadian-government-structure",
		Title:    "Canadian Government Structure: What You Need to Know",
		Excerpt:  "Learn about Canada's parliamentary democracy, government branches, and political system for your citizenship test.",
		ReadTime: "7 min read",
		Category: "Government",
		Body: `<h2>How Canada Is Governed</h2>
<p>Canada is a federal state, a parliamentary democracy and a constitutional monarchy. Parliament has three parts: the Sovereign, the Senate and the House of Commons.</p>
<p>The Prime Minister leads the party with the most seats in the House of Commons and chooses cabinet ministers. The Governor General represents the Sovereign and gives Royal Assent to bills.</p>
<p>Federal elections are held on the third Monday in October every four years, unless an earlier election is called.</p>`,
	},
	{
		Slug:     "canadian-geography-provinces-territories",
		Title:    "Canadian Geography: Provinces, Territories, and Landmarks",
		Excerpt:  "Study Canada's geography, including all provinces, territories, major cities, and natural landmarks for the test.",
		ReadTime: "9 min read",
		Category: "Geography",
		Body: `<h2>Provinces and Territories</h2>
<p>Canada has ten provinces and three territories. It is bordered by the Atlantic, Pacific and Arctic oceans and is the second largest country in the world.</p>
<p>The regions are the Atlantic Provinces, Central Canada, the Prairie Provinces, the West Coast and the North. Ottawa, on the Ottawa River, is the national capital.</p>`,
	},
	{
		Slug:     "canadian-rights-responsibilities",
		Title:    "Canadian Rights and Responsibilities: A Citizen's Guide",
		Excerpt:  "Understand your rights and responsibilities as a Canadian citizen, including voting, jury duty, and civic participation.",
		ReadTime: "5 min read",
		Category: "Citizenship",
		Body: `<h2>Rights</h2>
<p>The Canadian Charter of Rights and Freedoms protects freedom of conscience and religion, freedom of thought and expression, peaceful assembly and association, and mobility rights.</p>
<h2>Responsibilities</h2>
<p>Citizens obey the law, take responsibility for themselves and their families, serve on a jury when called, vote in elections, help others in the community, and protect Canada's heritage and environment.</p>`,
	},
}

// Posts returns every article without its body, in publication order
func Posts() []Post {
	list := make([]Post, len(posts))
	for i, p := range posts {
		p.Body = ""
		list[i] = p
	}
	return list
}

// PostBySlug returns the full article for slug
func PostBySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
