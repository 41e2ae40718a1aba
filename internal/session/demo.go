package session

// DemoReference is a three-point reference set for the sample survey.
const DemoReference = `a	2114.650	6007.800	8.217
b	2124.310	6007.800	8.080
c	2114.650	6011.800	8.274`

// DemoMeasured is a thinned slab survey over the reference area.
const DemoMeasured = `1	2124.252	6011.666	8.152
13	2123.875	6011.184	8.152
25	2123.371	6010.778	8.151
37	2122.927	6011.630	8.170
49	2123.186	6012.594	8.183
61	2122.001	6011.392	8.175
73	2121.317	6012.923	8.190
85	2120.512	6011.939	8.215
97	2118.560	6013.141	8.246
109	2117.683	6014.062	8.272
121	2117.549	6012.371	8.256
133	2117.425	6011.312	8.221
145	2114.909	6009.345	8.245
157	2116.395	6008.619	8.228
169	2117.525	6007.085	8.179
181	2118.479	6006.641	8.158
193	2121.198	6008.547	8.147
205	2122.279	6007.411	8.113
217	2120.795	6005.931	8.113
229	2122.177	6006.148	8.104
241	2123.334	6007.043	8.098
253	2123.885	6008.369	8.112
265	2123.772	6009.619	8.123
277	2119.537	6005.945	8.140`
